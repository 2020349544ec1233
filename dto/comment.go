package dto

import (
	"github.com/duoblog/duoblog/pagination"
	"github.com/duoblog/duoblog/utils"
)

// CreateComment is the comment creation input. PostID comes from the route,
// UserID from the authenticated context.
type CreateComment struct {
	Content string `json:"content" validate:"required"`
	PostID  uint   `json:"-" validate:"required,gt=0"`
	UserID  string `json:"-" validate:"required,len=24,hexadecimal"`
}

func (d *CreateComment) Validate() error {
	d.Content = utils.Sanitize(d.Content)
	return check(d)
}

// UpdateComment replaces a comment's content.
type UpdateComment struct {
	ID      uint   `json:"-" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,min=1"`
	UserID  string `json:"-" validate:"required"`
}

func (d *UpdateComment) Validate() error {
	d.Content = utils.Sanitize(d.Content)
	return check(d)
}

// DeleteComment identifies the comment and the acting user.
type DeleteComment struct {
	ID     uint   `validate:"required,gt=0"`
	UserID string `validate:"required,len=24,hexadecimal"`
}

func (d *DeleteComment) Validate() error {
	return check(d)
}

// ListComments carries the post scope plus resolved pagination.
type ListComments struct {
	PostID uint `validate:"required,gt=0"`
	Page   int
	Limit  int
}

func NewListComments(postID uint, pageRaw, limitRaw string) (ListComments, error) {
	page, limit := pagination.Derive(pageRaw, limitRaw)
	d := ListComments{PostID: postID, Page: page, Limit: limit}
	if err := check(&d); err != nil {
		return ListComments{}, err
	}
	return d, nil
}
