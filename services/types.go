package services

import (
	"context"

	"github.com/clubcaddy/backend/clients"
	"github.com/clubcaddy/backend/models"
)

// BooqableAPI is the upstream surface the services depend on.
// *clients.BooqableClient implements it; tests substitute fakes.
type BooqableAPI interface {
	GetProductsPage(ctx context.Context, page, perPage int) (*clients.ProductsPage, error)
	GetLocations(ctx context.Context) ([]clients.BooqableLocation, error)
	CheckAvailability(ctx context.Context, productID, locationID, year, month, day string) (bool, error)
}

// ClubSource is the slice of the catalogue service the availability resolver
// needs.
type ClubSource interface {
	FetchAllClubs(ctx context.Context) ([]models.Club, error)
}

// ClubLookup is the enrichment entry point used by the favourites and
// reservation services.
type ClubLookup interface {
	LookupByIDs(ctx context.Context, ids []string) ([]models.Club, error)
}

// Mailer delivers magic-link emails. When no mailer is configured the auth
// service logs the link instead.
type Mailer interface {
	SendMagicLink(to, link string) error
}
