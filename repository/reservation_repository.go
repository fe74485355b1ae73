package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clubcaddy/backend/models"
)

type ReservationRepository struct {
	collection *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{collection: db.Collection("reservations")}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now().UTC()
	if reservation.Status == "" {
		reservation.Status = models.ReservationConfirmed
	}
	_, err := r.collection.InsertOne(ctx, reservation)
	return err
}

func (r *ReservationRepository) FindByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	filter := bson.M{"user_id": userID}
	// Reservation dates are YYYY-MM-DD strings, so a lexicographic sort is a
	// date sort.
	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
