package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/duoblog/duoblog/apperr"
	"github.com/duoblog/duoblog/dto"
	"github.com/duoblog/duoblog/models"
	"github.com/duoblog/duoblog/pagination"
	"github.com/duoblog/duoblog/store"
)

// CommentService manages comments under posts.
type CommentService interface {
	Create(ctx context.Context, d dto.CreateComment) (*models.Comment, error)
	ListByPost(ctx context.Context, d dto.ListComments) (pagination.Envelope, error)
	Update(ctx context.Context, d dto.UpdateComment) (*models.Comment, error)
	Delete(ctx context.Context, d dto.DeleteComment) error
}

type commentService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

// NewCommentService builds the comment service over the given store.
func NewCommentService(st *store.Store, log *zap.SugaredLogger) CommentService {
	return &commentService{store: st, log: log}
}

// Create persists a comment after verifying both cross-references: the post
// in the relational store and the author in the user store. The comment is
// re-fetched after insert to confirm durability.
func (s *commentService) Create(ctx context.Context, d dto.CreateComment) (*models.Comment, error) {
	if _, err := s.store.Posts.FindByID(ctx, d.PostID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, apperr.Internal("failed to load post", err)
	}

	author, err := s.store.Users.FindByID(ctx, d.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
			return nil, apperr.NotFound("comment author not found")
		default:
			return nil, apperr.Internal("failed to load comment author", err)
		}
	}

	comment := &models.Comment{
		PostID:  d.PostID,
		UserID:  d.UserID,
		Content: d.Content,
	}
	if err := s.store.Comments.Create(ctx, comment); err != nil {
		return nil, apperr.Internal("failed to create comment", err)
	}

	created, err := s.store.Comments.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load created comment", err)
	}

	created.Author = author.Public()
	s.log.Infow("comment created", "comment_id", created.ID, "post_id", d.PostID, "user_id", d.UserID)
	return created, nil
}

// ListByPost returns one page of a post's comments, newest first, each with
// its hydrated author. Any failure during fetch or hydration fails the
// whole request.
func (s *commentService) ListByPost(ctx context.Context, d dto.ListComments) (pagination.Envelope, error) {
	comments, total, err := s.store.Comments.FindPageByPost(ctx, d.PostID, d.Page, d.Limit)
	if err != nil {
		return pagination.Envelope{}, apperr.Internal("failed to list comments", err)
	}

	if err := hydrateComments(ctx, s.store.Users, comments); err != nil {
		return pagination.Envelope{}, apperr.Internal("failed to load comment authors", err)
	}
	return pagination.NewEnvelope(comments, total, d.Page, d.Limit), nil
}

func (s *commentService) Update(ctx context.Context, d dto.UpdateComment) (*models.Comment, error) {
	comment, err := s.store.Comments.FindByID(ctx, d.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, apperr.Internal("failed to load comment", err)
	}

	if comment.UserID != d.UserID {
		return nil, apperr.Unauthorized("not authorized to update this comment")
	}

	comment.Content = d.Content
	if err := s.store.Comments.Update(ctx, comment); err != nil {
		return nil, apperr.Internal("failed to update comment", err)
	}

	author, err := lookupAuthor(ctx, s.store.Users, comment.UserID)
	if err != nil {
		return nil, apperr.Internal("failed to load comment author", err)
	}
	comment.Author = author
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, d dto.DeleteComment) error {
	comment, err := s.store.Comments.FindByID(ctx, d.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("comment not found")
		}
		return apperr.Internal("failed to load comment", err)
	}

	if comment.UserID != d.UserID {
		return apperr.Unauthorized("not authorized to delete this comment")
	}

	if err := s.store.Comments.Delete(ctx, d.ID); err != nil {
		return apperr.Internal("failed to delete comment", err)
	}
	s.log.Infow("comment deleted", "comment_id", d.ID, "user_id", d.UserID)
	return nil
}
