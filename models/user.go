package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created implicitly the first time an email requests a magic link.
// PasswordHash is only set for accounts that registered a password.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Verified     bool               `json:"verified" bson:"verified"`
	PasswordHash string             `json:"-" bson:"password_hash,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}
