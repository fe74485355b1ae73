package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/clubcaddy/backend/apperrors"
	"github.com/clubcaddy/backend/models"
	"github.com/clubcaddy/backend/repository"
)

// FavouriteService manages user-owned club sets and their read-time
// enrichment against the live catalogue.
type FavouriteService struct {
	repo   repository.FavouriteRepo
	logs   repository.DeletionLogRepo
	lookup ClubLookup
}

func NewFavouriteService(repo repository.FavouriteRepo, logs repository.DeletionLogRepo, lookup ClubLookup) *FavouriteService {
	return &FavouriteService{repo: repo, logs: logs, lookup: lookup}
}

func (s *FavouriteService) CreateFavourite(ctx context.Context, userID, setName string, clubIDs []string) (*models.EnrichedFavourite, error) {
	setName = strings.TrimSpace(setName)
	if setName == "" {
		return nil, apperrors.BadRequest("setName is required")
	}
	if clubIDs == nil {
		clubIDs = []string{}
	}

	fav := &models.Favourite{
		UserID:  userID,
		SetName: setName,
		ClubIDs: clubIDs,
	}
	if err := s.repo.Create(ctx, fav); err != nil {
		return nil, apperrors.Internal(err)
	}

	clubs, err := s.lookup.LookupByIDs(ctx, fav.ClubIDs)
	if err != nil {
		return nil, err
	}
	return enrichFavourite(*fav, indexByID(clubs)), nil
}

// ListFavourites returns the user's non-deleted sets, newest-updated first.
// Enrichment batches every distinct club id across all sets into a single
// catalogue aggregation instead of one fetch per set.
func (s *FavouriteService) ListFavourites(ctx context.Context, userID string) ([]models.EnrichedFavourite, error) {
	favourites, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	var allIDs []string
	for _, fav := range favourites {
		allIDs = append(allIDs, fav.ClubIDs...)
	}
	byID, err := s.lookupDistinct(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedFavourite, 0, len(favourites))
	for _, fav := range favourites {
		enriched = append(enriched, *enrichFavourite(fav, byID))
	}
	return enriched, nil
}

// GetFavourite returns (nil, nil) for an id that does not resolve to one of
// the user's live sets; controllers fold that into the 200 not-found
// envelope.
func (s *FavouriteService) GetFavourite(ctx context.Context, userID, id string) (*models.EnrichedFavourite, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}
	fav, err := s.repo.FindByID(ctx, userID, oid)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if fav == nil {
		return nil, nil
	}

	clubs, err := s.lookup.LookupByIDs(ctx, fav.ClubIDs)
	if err != nil {
		return nil, err
	}
	return enrichFavourite(*fav, indexByID(clubs)), nil
}

func (s *FavouriteService) UpdateFavourite(ctx context.Context, userID, id string, update repository.FavouriteUpdate) (*models.EnrichedFavourite, error) {
	if update.SetName != nil && strings.TrimSpace(*update.SetName) == "" {
		return nil, apperrors.BadRequest("setName cannot be empty")
	}
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}

	fav, err := s.repo.Update(ctx, userID, oid, update)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if fav == nil {
		return nil, nil
	}

	clubs, err := s.lookup.LookupByIDs(ctx, fav.ClubIDs)
	if err != nil {
		return nil, err
	}
	return enrichFavourite(*fav, indexByID(clubs)), nil
}

// DeleteFavourite soft-deletes the set and appends a DeletionLog snapshot of
// the pre-deletion document. The two writes are a logical unit but not a
// transaction; a failed log append is recorded and does not undo the delete.
func (s *FavouriteService) DeleteFavourite(ctx context.Context, userID, id string) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}

	fav, err := s.repo.SoftDelete(ctx, userID, oid)
	if err != nil {
		return false, apperrors.Internal(err)
	}
	if fav == nil {
		return false, nil
	}

	logEntry := &models.DeletionLog{
		EntityType: "favourite",
		EntityID:   fav.ID.Hex(),
		Snapshot:   fav,
		DeletedBy:  userID,
	}
	if err := s.logs.Append(ctx, logEntry); err != nil {
		zap.L().Error("failed to append deletion log",
			zap.String("favourite_id", fav.ID.Hex()),
			zap.Error(err),
		)
	}
	return true, nil
}

// lookupDistinct resolves a (possibly duplicated) id list through one
// catalogue call and indexes the result.
func (s *FavouriteService) lookupDistinct(ctx context.Context, ids []string) (map[string]models.Club, error) {
	seen := make(map[string]bool, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	clubs, err := s.lookup.LookupByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	return indexByID(clubs), nil
}

func enrichFavourite(fav models.Favourite, byID map[string]models.Club) *models.EnrichedFavourite {
	clubs := make([]models.Club, 0, len(fav.ClubIDs))
	for _, id := range fav.ClubIDs {
		if club, ok := byID[id]; ok {
			clubs = append(clubs, club)
		}
	}
	return &models.EnrichedFavourite{
		ID:        fav.ID,
		UserID:    fav.UserID,
		SetName:   fav.SetName,
		ClubIDs:   fav.ClubIDs,
		Clubs:     clubs,
		CreatedAt: fav.CreatedAt,
		UpdatedAt: fav.UpdatedAt,
	}
}

func indexByID(clubs []models.Club) map[string]models.Club {
	byID := make(map[string]models.Club, len(clubs))
	for _, club := range clubs {
		byID[club.ID] = club
	}
	return byID
}

func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
