package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/clubcaddy/backend/apperrors"
	"github.com/clubcaddy/backend/clients"
	"github.com/clubcaddy/backend/models"
)

// cataloguePageSize is the page size used against Booqable. The public list
// endpoint clamps its own limit independently.
const cataloguePageSize = 100

// ArchivedFilter selects which side of the archived flag ListClubs returns.
type ArchivedFilter int

const (
	ActiveOnly ArchivedFilter = iota
	ArchivedOnly
	AllClubs
)

// ListClubsParams defines the parameters for listing the catalogue.
type ListClubsParams struct {
	Search   string
	Brand    string
	Category string
	Archived ArchivedFilter
	Page     int
	Limit    int
}

// ListClubsResult is one page of the filtered catalogue plus post-filter,
// pre-pagination totals.
type ListClubsResult struct {
	Clubs      []models.Club `json:"clubs"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}

// CatalogueService aggregates the Booqable product catalogue. It keeps no
// state: every operation re-fetches from upstream.
type CatalogueService struct {
	api BooqableAPI
}

func NewCatalogueService(api BooqableAPI) *CatalogueService {
	return &CatalogueService{api: api}
}

// FetchAllClubs fetches every catalogue page and concatenates them in page
// order. Pages past the first are requested concurrently; results land in
// their page slot, so completion order never reorders the output. A single
// failed page fails the whole aggregation.
func (s *CatalogueService) FetchAllClubs(ctx context.Context) ([]models.Club, error) {
	first, err := s.api.GetProductsPage(ctx, 1, cataloguePageSize)
	if err != nil {
		return nil, apperrors.Upstream("Failed to fetch clubs from Booqable", err)
	}

	totalPages := int(math.Ceil(float64(first.Total) / float64(cataloguePageSize)))
	if totalPages <= 1 {
		return s.transformAll(first.Products), nil
	}

	pages := make([][]clients.BooqableProduct, totalPages)
	pages[0] = first.Products
	errs := make([]error, totalPages)

	var wg sync.WaitGroup
	for page := 2; page <= totalPages; page++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			p, err := s.api.GetProductsPage(ctx, page, cataloguePageSize)
			if err != nil {
				errs[page-1] = err
				return
			}
			pages[page-1] = p.Products
		}(page)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, apperrors.Upstream("Failed to fetch clubs from Booqable", err)
		}
	}

	var products []clients.BooqableProduct
	for _, p := range pages {
		products = append(products, p...)
	}
	return s.transformAll(products), nil
}

// ListClubs filters, sorts and paginates the full catalogue in memory.
func (s *CatalogueService) ListClubs(ctx context.Context, params ListClubsParams) (*ListClubsResult, error) {
	all, err := s.FetchAllClubs(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Club, 0, len(all))
	for _, club := range all {
		switch params.Archived {
		case ActiveOnly:
			if club.Archived {
				continue
			}
		case ArchivedOnly:
			if !club.Archived {
				continue
			}
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(club.Name), strings.ToLower(params.Search)) {
			continue
		}
		if params.Brand != "" && club.Brand != params.Brand {
			continue
		}
		if params.Category != "" && club.Category != params.Category {
			continue
		}
		filtered = append(filtered, club)
	}

	sortNewestFirst(filtered)

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > cataloguePageSize {
		limit = cataloguePageSize
	}

	total := len(filtered)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ListClubsResult{
		Clubs:      filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
	}, nil
}

// GetClub returns a single club by upstream id, or nil when the id does not
// resolve.
func (s *CatalogueService) GetClub(ctx context.Context, id string) (*models.Club, error) {
	all, err := s.FetchAllClubs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// LookupByIDs resolves stored club-id references into live catalogue records.
// IDs that no longer exist upstream are silently dropped; an empty id list
// short-circuits without an upstream call.
func (s *CatalogueService) LookupByIDs(ctx context.Context, ids []string) ([]models.Club, error) {
	if len(ids) == 0 {
		return []models.Club{}, nil
	}

	all, err := s.FetchAllClubs(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	matched := make([]models.Club, 0, len(ids))
	for _, club := range all {
		if wanted[club.ID] {
			matched = append(matched, club)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

// ListCourses returns every Booqable location as a course.
func (s *CatalogueService) ListCourses(ctx context.Context) ([]models.Course, error) {
	locations, err := s.api.GetLocations(ctx)
	if err != nil {
		return nil, apperrors.Upstream("Failed to fetch courses from Booqable", err)
	}

	courses := make([]models.Course, 0, len(locations))
	for _, loc := range locations {
		courses = append(courses, models.Course{
			ID:      loc.ID,
			Name:    loc.Name,
			Address: joinAddress(loc.Address1, loc.Address2, loc.City),
		})
	}
	return courses, nil
}

func (s *CatalogueService) transformAll(products []clients.BooqableProduct) []models.Club {
	clubs := make([]models.Club, 0, len(products))
	for _, p := range products {
		clubs = append(clubs, TransformProduct(p))
	}
	return clubs
}

// TransformProduct maps a raw upstream product onto the API-facing Club,
// deriving the tag-based fields. An unparseable created-at maps to the zero
// time so the product sorts last.
func TransformProduct(p clients.BooqableProduct) models.Club {
	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	category, shaft, ironType := DeriveClubTags(p.Tags)
	return models.Club{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Photo:       p.Photo,
		Brand:       p.Brand,
		Archived:    p.Archived,
		Tags:        p.Tags,
		CreatedAt:   createdAt,
		Category:    category,
		ShaftType:   shaft,
		IronType:    ironType,
	}
}

// DeriveClubTags computes category, shaft type and iron type from the
// free-text tag list. Source tags are not mutually exclusive; precedence
// order makes the derived values so. First match wins, no match yields "".
func DeriveClubTags(tags []string) (category, shaft, ironType string) {
	switch {
	case hasTag(tags, "driver"):
		category = models.CategoryDriver
	case hasTag(tags, "fairway-wood") || hasTag(tags, "hybrid"):
		category = models.CategoryFairway
	case hasTag(tags, "iron"):
		category = models.CategoryIrons
	case hasTag(tags, "wedge"):
		category = models.CategoryWedges
	case hasTag(tags, "putter"):
		category = models.CategoryPutter
	}

	switch {
	case hasTag(tags, "flexible"):
		shaft = models.ShaftFlexible
	case hasTag(tags, "stiff"):
		shaft = models.ShaftStiff
	}

	switch {
	case hasTag(tags, "blades"):
		ironType = models.IronBlades
	case hasTag(tags, "cavity-back"):
		ironType = models.IronCavityBack
	case hasTag(tags, "muscle-back"):
		ironType = models.IronMuscleBack
	}

	return category, shaft, ironType
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func sortNewestFirst(clubs []models.Club) {
	sort.SliceStable(clubs, func(i, j int) bool {
		return clubs[i].CreatedAt.After(clubs[j].CreatedAt)
	})
}

func joinAddress(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}
