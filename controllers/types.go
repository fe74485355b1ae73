package controllers

import (
	"context"

	"github.com/clubcaddy/backend/models"
	"github.com/clubcaddy/backend/repository"
	"github.com/clubcaddy/backend/services"
)

// Service surfaces the controllers depend on. The concrete services
// implement them; controller tests substitute fakes.

type CatalogueAPI interface {
	ListClubs(ctx context.Context, params services.ListClubsParams) (*services.ListClubsResult, error)
	GetClub(ctx context.Context, id string) (*models.Club, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type AvailabilityAPI interface {
	GetAvailableClubs(ctx context.Context, course, date string) ([]models.AvailableClub, error)
	AvailableDates(locationID string, year, month int) ([]string, error)
}

type FavouriteAPI interface {
	CreateFavourite(ctx context.Context, userID, setName string, clubIDs []string) (*models.EnrichedFavourite, error)
	ListFavourites(ctx context.Context, userID string) ([]models.EnrichedFavourite, error)
	GetFavourite(ctx context.Context, userID, id string) (*models.EnrichedFavourite, error)
	UpdateFavourite(ctx context.Context, userID, id string, update repository.FavouriteUpdate) (*models.EnrichedFavourite, error)
	DeleteFavourite(ctx context.Context, userID, id string) (bool, error)
}

type ReservationAPI interface {
	CreateReservation(ctx context.Context, userID, course, date string, clubIDs []string, saveToBag bool) (*models.EnrichedReservation, error)
	ListReservations(ctx context.Context, userID string) ([]models.EnrichedReservation, error)
}

type AuthAPI interface {
	RequestMagicLink(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, token string) (*services.AuthSession, error)
	Login(ctx context.Context, email, password string) (*services.AuthSession, error)
}
