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

// PostService manages posts and their cross-store author hydration.
type PostService interface {
	Create(ctx context.Context, d dto.CreatePost) (*models.Post, error)
	List(ctx context.Context, page, limit int) (pagination.Envelope, error)
	// GetByID reports absence through the found flag instead of an error so
	// the caller can render 404 without an error path.
	GetByID(ctx context.Context, id uint) (*models.Post, bool, error)
	Update(ctx context.Context, d dto.UpdatePost) (*models.Post, error)
	Delete(ctx context.Context, d dto.DeletePost) error
}

type postService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

// NewPostService builds the post service over the given store.
func NewPostService(st *store.Store, log *zap.SugaredLogger) PostService {
	return &postService{store: st, log: log}
}

// Create persists a new post. The author must exist in the user store: the
// cross-store reference has no database-level foreign key, so the check
// happens here.
func (s *postService) Create(ctx context.Context, d dto.CreatePost) (*models.Post, error) {
	author, err := s.store.Users.FindByID(ctx, d.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
			return nil, apperr.NotFound("post author not found")
		default:
			return nil, apperr.Internal("failed to load post author", err)
		}
	}

	post := &models.Post{
		Title:   d.Title,
		Content: d.Content,
		UserID:  d.UserID,
	}
	if err := s.store.Posts.Create(ctx, post); err != nil {
		return nil, apperr.Internal("failed to create post", err)
	}

	post.Author = author.Public()
	s.log.Infow("post created", "post_id", post.ID, "user_id", post.UserID)
	return post, nil
}

// List fetches one page of posts with their comments, then hydrates every
// author from the user store. Hydration failures fail the whole request.
func (s *postService) List(ctx context.Context, page, limit int) (pagination.Envelope, error) {
	posts, total, err := s.store.Posts.FindPage(ctx, page, limit)
	if err != nil {
		return pagination.Envelope{}, apperr.Internal("failed to list posts", err)
	}

	if err := s.hydrateAll(ctx, posts); err != nil {
		return pagination.Envelope{}, apperr.Internal("failed to load post authors", err)
	}
	return pagination.NewEnvelope(posts, total, page, limit), nil
}

func (s *postService) GetByID(ctx context.Context, id uint) (*models.Post, bool, error) {
	post, err := s.store.Posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, apperr.Internal("failed to load post", err)
	}
	if err := s.hydratePost(ctx, post); err != nil {
		return nil, false, apperr.Internal("failed to load post authors", err)
	}
	return post, true, nil
}

func (s *postService) Update(ctx context.Context, d dto.UpdatePost) (*models.Post, error) {
	post, err := s.store.Posts.FindByID(ctx, d.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, apperr.Internal("failed to load post", err)
	}

	if post.UserID != d.UserID {
		return nil, apperr.Unauthorized("not authorized to update this post")
	}

	author, err := s.store.Users.FindByID(ctx, post.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
			return nil, apperr.NotFound("post author not found")
		default:
			return nil, apperr.Internal("failed to load post author", err)
		}
	}

	if d.Title != nil {
		post.Title = *d.Title
	}
	if d.Content != nil {
		post.Content = *d.Content
	}
	if err := s.store.Posts.Update(ctx, post); err != nil {
		return nil, apperr.Internal("failed to update post", err)
	}

	post.Author = author.Public()
	return post, nil
}

// Delete removes the post after the ownership check; dependent comments are
// removed by the relational cascade.
func (s *postService) Delete(ctx context.Context, d dto.DeletePost) error {
	post, err := s.store.Posts.FindByID(ctx, d.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("post not found")
		}
		return apperr.Internal("failed to load post", err)
	}

	if post.UserID != d.UserID {
		return apperr.Unauthorized("not authorized to delete this post")
	}

	if err := s.store.Posts.Delete(ctx, d.ID); err != nil {
		return apperr.Internal("failed to delete post", err)
	}
	s.log.Infow("post deleted", "post_id", d.ID, "user_id", d.UserID)
	return nil
}
