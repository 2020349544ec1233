package models

import "time"

// Post lives in the relational store. UserID references a User document in
// MongoDB, so it is not a database-level foreign key; the service layer
// verifies the author exists before writes.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    string    `gorm:"size:24;index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Comments  []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`

	// Author is denormalized from the user store for responses.
	Author *PublicUser `gorm:"-" json:"author,omitempty"`
}
