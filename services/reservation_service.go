package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/clubcaddy/backend/apperrors"
	"github.com/clubcaddy/backend/kafka"
	"github.com/clubcaddy/backend/models"
	"github.com/clubcaddy/backend/repository"
)

// ReservationService creates and lists reservations. Reservation records are
// append-only.
type ReservationService struct {
	repo       repository.ReservationRepo
	favourites *FavouriteService
	lookup     ClubLookup
	producer   *kafka.Producer
}

func NewReservationService(repo repository.ReservationRepo, favourites *FavouriteService, lookup ClubLookup, producer *kafka.Producer) *ReservationService {
	return &ReservationService{
		repo:       repo,
		favourites: favourites,
		lookup:     lookup,
		producer:   producer,
	}
}

// CreateReservation records a checkout. With saveToBag the club list is
// first saved as a favourite set named "<course> - <date>"; the two inserts
// are a saga without rollback, so a reservation failure after the favourite
// insert leaves the favourite behind.
func (s *ReservationService) CreateReservation(ctx context.Context, userID, course, date string, clubIDs []string, saveToBag bool) (*models.EnrichedReservation, error) {
	if course == "" {
		return nil, apperrors.BadRequest("course is required")
	}
	if date == "" {
		return nil, apperrors.BadRequest("date is required")
	}
	if len(clubIDs) == 0 {
		return nil, apperrors.BadRequest("clubs must not be empty")
	}

	reservation := &models.Reservation{
		UserID:  userID,
		Course:  course,
		Date:    date,
		ClubIDs: clubIDs,
		Status:  models.ReservationConfirmed,
	}

	if saveToBag {
		bag, err := s.favourites.CreateFavourite(ctx, userID, bagName(course, date), clubIDs)
		if err != nil {
			return nil, err
		}
		reservation.SavedAsBag = &bag.ID
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.publishCreated(reservation)

	clubs, err := s.lookup.LookupByIDs(ctx, reservation.ClubIDs)
	if err != nil {
		return nil, err
	}
	return enrichReservation(*reservation, indexByID(clubs)), nil
}

// ListReservations returns the user's reservations newest-date-first, with
// the same single-aggregation batched enrichment as favourites.
func (s *ReservationService) ListReservations(ctx context.Context, userID string) ([]models.EnrichedReservation, error) {
	reservations, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	var allIDs []string
	for _, r := range reservations {
		allIDs = append(allIDs, r.ClubIDs...)
	}
	byID, err := s.favourites.lookupDistinct(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedReservation, 0, len(reservations))
	for _, r := range reservations {
		enriched = append(enriched, *enrichReservation(r, byID))
	}
	return enriched, nil
}

// publishCreated emits a reservation event for downstream consumers.
// Delivery is fire-and-forget; the reservation is already committed.
func (s *ReservationService) publishCreated(r *models.Reservation) {
	if s.producer == nil {
		return
	}
	event := kafka.ReservationEvent{
		Event:         "reservation.created",
		UserID:        r.UserID,
		ReservationID: r.ID.Hex(),
		Course:        r.Course,
		Date:          r.Date,
		ClubIDs:       r.ClubIDs,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.producer.SendReservationEvent(event); err != nil {
		zap.L().Warn("failed to publish reservation event",
			zap.String("reservation_id", event.ReservationID),
			zap.Error(err),
		)
	}
}

// bagName builds the favourite name used by saveToBag. The date is shown in
// a human-readable form when it parses.
func bagName(course, date string) string {
	if d, err := time.Parse("2006-01-02", date); err == nil {
		return fmt.Sprintf("%s - %s", course, d.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", course, date)
}

func enrichReservation(r models.Reservation, byID map[string]models.Club) *models.EnrichedReservation {
	clubs := make([]models.Club, 0, len(r.ClubIDs))
	for _, id := range r.ClubIDs {
		if club, ok := byID[id]; ok {
			clubs = append(clubs, club)
		}
	}
	return &models.EnrichedReservation{
		ID:         r.ID,
		UserID:     r.UserID,
		Course:     r.Course,
		Date:       r.Date,
		ClubIDs:    r.ClubIDs,
		Clubs:      clubs,
		Status:     r.Status,
		SavedAsBag: r.SavedAsBag,
		CreatedAt:  r.CreatedAt,
	}
}
