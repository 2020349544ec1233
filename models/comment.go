package models

import "time"

// Comment is a reply to a post. PostID is a true foreign key with cascade
// delete; UserID crosses into the Mongo user store like Post.UserID.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	UserID    string    `gorm:"size:24;index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *PublicUser `gorm:"-" json:"author,omitempty"`
}
