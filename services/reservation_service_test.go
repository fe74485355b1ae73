package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clubcaddy/backend/apperrors"
	"github.com/clubcaddy/backend/models"
)

type fakeReservationRepo struct {
	docs []*models.Reservation
	err  error
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	if f.err != nil {
		return f.err
	}
	r.ID = primitive.NewObjectID()
	r.CreatedAt = time.Now().UTC()
	stored := *r
	f.docs = append(f.docs, &stored)
	return nil
}

func (f *fakeReservationRepo) FindByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.docs {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func reservationFixture(lookup *fakeClubLookup) (*ReservationService, *fakeReservationRepo, *fakeFavouriteRepo) {
	favRepo := newFakeFavouriteRepo()
	favourites := NewFavouriteService(favRepo, &fakeDeletionLogRepo{}, lookup)
	repo := &fakeReservationRepo{}
	return NewReservationService(repo, favourites, lookup, nil), repo, favRepo
}

func TestCreateReservationValidation(t *testing.T) {
	svc, _, _ := reservationFixture(newFakeClubLookup("c1"))
	ctx := context.Background()

	tests := []struct {
		name   string
		course string
		date   string
		clubs  []string
	}{
		{"missing course", "", "2025-06-10", []string{"c1"}},
		{"missing date", "Pebble Creek", "", []string{"c1"}},
		{"empty clubs", "Pebble Creek", "2025-06-10", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReservation(ctx, "u1", tt.course, tt.date, tt.clubs, false)
			require.Error(t, err)
			require.Equal(t, 400, apperrors.From(err).Code)
		})
	}
}

func TestCreateReservationDefaultsConfirmed(t *testing.T) {
	svc, repo, _ := reservationFixture(newFakeClubLookup("c1"))

	created, err := svc.CreateReservation(context.Background(), "u1", "Pebble Creek", "2025-06-10", []string{"c1"}, false)
	require.NoError(t, err)
	require.Equal(t, models.ReservationConfirmed, created.Status)
	require.Nil(t, created.SavedAsBag)
	require.Len(t, created.Clubs, 1)
	require.Len(t, repo.docs, 1)
}

func TestCreateReservationSaveToBag(t *testing.T) {
	svc, _, favRepo := reservationFixture(newFakeClubLookup("c1", "c2"))
	ctx := context.Background()

	created, err := svc.CreateReservation(ctx, "u1", "Pebble Creek", "2025-06-10", []string{"c1", "c2"}, true)
	require.NoError(t, err)
	require.NotNil(t, created.SavedAsBag)

	bag, ok := favRepo.docs[*created.SavedAsBag]
	require.True(t, ok)
	require.Equal(t, "Pebble Creek - Jun 10, 2025", bag.SetName)
	require.Equal(t, []string{"c1", "c2"}, bag.ClubIDs)
}

func TestCreateReservationSaveToBagUnparseableDate(t *testing.T) {
	svc, _, favRepo := reservationFixture(newFakeClubLookup("c1"))

	created, err := svc.CreateReservation(context.Background(), "u1", "Pebble Creek", "next tuesday", []string{"c1"}, true)
	require.NoError(t, err)

	bag := favRepo.docs[*created.SavedAsBag]
	require.Equal(t, "Pebble Creek - next tuesday", bag.SetName)
}

func TestCreateReservationFailureLeavesBagBehind(t *testing.T) {
	lookup := newFakeClubLookup("c1")
	favRepo := newFakeFavouriteRepo()
	favourites := NewFavouriteService(favRepo, &fakeDeletionLogRepo{}, lookup)
	repo := &fakeReservationRepo{err: context.DeadlineExceeded}
	svc := NewReservationService(repo, favourites, lookup, nil)

	_, err := svc.CreateReservation(context.Background(), "u1", "Pebble Creek", "2025-06-10", []string{"c1"}, true)
	require.Error(t, err)

	// No rollback: the favourite insert survives the reservation failure.
	require.Len(t, favRepo.docs, 1)
	require.Empty(t, repo.docs)
}

func TestListReservationsBatchesEnrichment(t *testing.T) {
	lookup := newFakeClubLookup("c1", "c2", "c3")
	svc, _, _ := reservationFixture(lookup)
	ctx := context.Background()

	_, err := svc.CreateReservation(ctx, "u1", "Pebble Creek", "2025-06-10", []string{"c1", "c2"}, false)
	require.NoError(t, err)
	_, err = svc.CreateReservation(ctx, "u1", "Links North", "2025-06-11", []string{"c2", "c3"}, false)
	require.NoError(t, err)

	lookup.calls = nil
	reservations, err := svc.ListReservations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	require.Len(t, lookup.calls, 1)
	require.ElementsMatch(t, []string{"c1", "c2", "c3"}, lookup.calls[0])
}

func TestListReservationsScopedToUser(t *testing.T) {
	svc, _, _ := reservationFixture(newFakeClubLookup("c1"))
	ctx := context.Background()

	_, err := svc.CreateReservation(ctx, "u1", "Pebble Creek", "2025-06-10", []string{"c1"}, false)
	require.NoError(t, err)
	_, err = svc.CreateReservation(ctx, "u2", "Pebble Creek", "2025-06-10", []string{"c1"}, false)
	require.NoError(t, err)

	reservations, err := svc.ListReservations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	require.Equal(t, "u1", reservations[0].UserID)
}
