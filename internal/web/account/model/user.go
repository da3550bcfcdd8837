// Package model contains the admin account documents.
package model

import (
	"time"

	gutils "github.com/Laisky/go-utils/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an admin account. There is no self-registration; accounts are
// created out-of-band by the seed-admin command.
type User struct {
	// ID unique identifier for the user
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Email login account, unique
	Email string `bson:"email" json:"email"`
	// Password hashed password, never serialized to clients
	Password string `bson:"password" json:"-"`
	// Role single elevated permission level, always "admin"
	Role string `bson:"role" json:"role"`
	// CreatedAt time when the account was created
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	// UpdatedAt time when the account was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// NewUser creates a user with timestamps set.
func NewUser() *User {
	now := gutils.Clock.GetUTCNow()
	return &User{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
