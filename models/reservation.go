package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation statuses. New reservations default to confirmed.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation records a checkout: a course name (free text, not a location
// id), a date and the reserved club IDs. Reservations are append-only; they
// are never updated or deleted.
type Reservation struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID     string              `json:"userId" bson:"user_id"`
	Course     string              `json:"course" bson:"course"`
	Date       string              `json:"date" bson:"date"`
	ClubIDs    []string            `json:"clubs" bson:"clubs"`
	Status     string              `json:"status" bson:"status"`
	SavedAsBag *primitive.ObjectID `json:"savedAsBag,omitempty" bson:"saved_as_bag,omitempty"`
	CreatedAt  time.Time           `json:"createdAt" bson:"created_at"`
}

// EnrichedReservation carries live club records alongside the stored IDs.
type EnrichedReservation struct {
	ID         primitive.ObjectID  `json:"id"`
	UserID     string              `json:"userId"`
	Course     string              `json:"course"`
	Date       string              `json:"date"`
	ClubIDs    []string            `json:"clubIds"`
	Clubs      []Club              `json:"clubs"`
	Status     string              `json:"status"`
	SavedAsBag *primitive.ObjectID `json:"savedAsBag,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
}
