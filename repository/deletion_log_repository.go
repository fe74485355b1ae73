package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clubcaddy/backend/models"
)

type DeletionLogRepository struct {
	collection *mongo.Collection
}

func NewDeletionLogRepository(db *mongo.Database) *DeletionLogRepository {
	return &DeletionLogRepository{collection: db.Collection("deletion_logs")}
}

func (r *DeletionLogRepository) Append(ctx context.Context, log *models.DeletionLog) error {
	log.ID = primitive.NewObjectID()
	if log.DeletedAt.IsZero() {
		log.DeletedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, log)
	return err
}
