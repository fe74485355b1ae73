package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeletionLog is an append-only audit record written alongside every
// soft-delete. Snapshot holds the full pre-deletion document.
type DeletionLog struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EntityType string             `json:"entityType" bson:"entity_type"`
	EntityID   string             `json:"entityId" bson:"entity_id"`
	Snapshot   interface{}        `json:"snapshot" bson:"snapshot"`
	DeletedBy  string             `json:"deletedBy" bson:"deleted_by"`
	DeletedAt  time.Time          `json:"deletedAt" bson:"deleted_at"`
}
