package dto

import (
	"strings"

	"github.com/duoblog/duoblog/pagination"
	"github.com/duoblog/duoblog/utils"
)

// CreatePost is the post creation input. UserID is the authenticated
// author's canonical 24-hex identifier, set by the controller.
type CreatePost struct {
	Title   string `json:"title" validate:"required,min=3,max=255"`
	Content string `json:"content" validate:"required"`
	UserID  string `json:"-" validate:"required,len=24,hexadecimal"`
}

// Validate trims and sanitizes user-provided text, then checks constraints.
func (d *CreatePost) Validate() error {
	d.Title = utils.Sanitize(strings.TrimSpace(d.Title))
	d.Content = utils.Sanitize(d.Content)
	return check(d)
}

// UpdatePost is the partial update input; nil text fields stay unchanged.
type UpdatePost struct {
	ID      uint    `json:"-" validate:"required,gt=0"`
	Title   *string `json:"title" validate:"omitempty,min=3,max=255"`
	Content *string `json:"content"`
	UserID  string  `json:"-" validate:"required,len=24,hexadecimal"`
}

func (d *UpdatePost) Validate() error {
	if d.Title != nil {
		t := utils.Sanitize(strings.TrimSpace(*d.Title))
		d.Title = &t
	}
	if d.Content != nil {
		c := utils.Sanitize(*d.Content)
		d.Content = &c
	}
	return check(d)
}

// DeletePost identifies the post and the acting user.
type DeletePost struct {
	ID     uint   `validate:"required,gt=0"`
	UserID string `validate:"required,len=24,hexadecimal"`
}

func (d *DeletePost) Validate() error {
	return check(d)
}

// ListPosts carries resolved pagination for the post listing.
type ListPosts struct {
	Page  int
	Limit int
}

// NewListPosts derives pagination from raw query values; malformed input
// falls back to defaults rather than failing.
func NewListPosts(pageRaw, limitRaw string) ListPosts {
	page, limit := pagination.Derive(pageRaw, limitRaw)
	return ListPosts{Page: page, Limit: limit}
}
