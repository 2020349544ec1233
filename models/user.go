package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account document stored in MongoDB. Passwords are stored as
// bcrypt hashes only and never serialized into responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// PublicUser is the projection of a user attached to posts and comments and
// returned by user endpoints. The ID is the canonical 24-hex string form.
type PublicUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Public returns the response-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Username: u.Username,
	}
}
