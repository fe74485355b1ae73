package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favourite is a user-owned named set of club IDs ("bag"). Club IDs are kept
// in insertion order and duplicates are not collapsed. Favourites are
// soft-deleted: the document stays in the collection with Deleted set.
type Favourite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"`
	SetName   string             `json:"setName" bson:"set_name"`
	ClubIDs   []string           `json:"clubs" bson:"clubs"`
	Deleted   bool               `json:"-" bson:"deleted"`
	DeletedAt *time.Time         `json:"-" bson:"deleted_at,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// EnrichedFavourite is the read-time shape: the stored club ID references
// replaced with live catalogue records. IDs that no longer resolve upstream
// are dropped from Clubs but survive in ClubIDs.
type EnrichedFavourite struct {
	ID        primitive.ObjectID `json:"id"`
	UserID    string             `json:"userId"`
	SetName   string             `json:"setName"`
	ClubIDs   []string           `json:"clubIds"`
	Clubs     []Club             `json:"clubs"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
