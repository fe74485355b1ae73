package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clubcaddy/backend/models"
)

// FavouriteUpdate carries the mutable fields of a favourite set. Nil fields
// are left untouched; Add/Remove apply after a Clubs replacement.
type FavouriteUpdate struct {
	SetName     *string
	Clubs       *[]string
	AddClubs    []string
	RemoveClubs []string
}

// FavouriteRepo persists user-owned club sets. All read paths are scoped to
// the owning user and exclude soft-deleted documents.
type FavouriteRepo interface {
	Create(ctx context.Context, fav *models.Favourite) error
	FindByUser(ctx context.Context, userID string) ([]models.Favourite, error)
	FindByID(ctx context.Context, userID string, id primitive.ObjectID) (*models.Favourite, error)
	Update(ctx context.Context, userID string, id primitive.ObjectID, update FavouriteUpdate) (*models.Favourite, error)
	SoftDelete(ctx context.Context, userID string, id primitive.ObjectID) (*models.Favourite, error)
}

// ReservationRepo persists reservations. Reservations are append-only.
type ReservationRepo interface {
	Create(ctx context.Context, r *models.Reservation) error
	FindByUser(ctx context.Context, userID string) ([]models.Reservation, error)
}

// UserRepo persists accounts.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindOrCreateByEmail(ctx context.Context, email string) (*models.User, error)
	MarkVerified(ctx context.Context, email string) (*models.User, error)
}

// DeletionLogRepo appends audit snapshots of deleted entities.
type DeletionLogRepo interface {
	Append(ctx context.Context, log *models.DeletionLog) error
}

// LoginTokenStore holds single-use magic-link tokens. The store purges
// tokens itself once the TTL passes; Consume atomically reads and deletes so
// racing verifications cannot redeem the same token twice. A consumed or
// expired token yields an empty email, not an error.
type LoginTokenStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}
