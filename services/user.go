// Package services holds the business rules for users, posts, and comments.
// Services receive their stores at construction and only ever surface typed
// errors from the apperr taxonomy.
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
	"github.com/duoblog/duoblog/utils"
)

// UserService manages accounts in the document store.
type UserService interface {
	Create(ctx context.Context, d dto.CreateUser) (*models.PublicUser, error)
	Login(ctx context.Context, d dto.LoginUser) (string, error)
	GetByID(ctx context.Context, id string) (*models.PublicUser, error)
	Update(ctx context.Context, id string, d dto.UpdateUser, requestingUserID string) (*models.PublicUser, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) (pagination.Envelope, error)
}

type userService struct {
	store  *store.Store
	tokens *utils.TokenManager
	log    *zap.SugaredLogger
}

// NewUserService builds the user service over the given store and token
// manager.
func NewUserService(st *store.Store, tokens *utils.TokenManager, log *zap.SugaredLogger) UserService {
	return &userService{store: st, tokens: tokens, log: log}
}

func (s *userService) Create(ctx context.Context, d dto.CreateUser) (*models.PublicUser, error) {
	_, err := s.store.Users.FindByUsername(ctx, d.Username)
	if err == nil {
		return nil, apperr.Conflict("username is already taken")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Internal("failed to check username", err)
	}

	hash, err := utils.HashPassword(d.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &models.User{
		Name:         d.Name,
		Username:     d.Username,
		PasswordHash: hash,
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		// The pre-check above races with concurrent registrations; the
		// unique index is the authority.
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict("username is already taken")
		}
		return nil, apperr.Internal("failed to create user", err)
	}

	s.log.Infow("user created", "user_id", user.ID.Hex(), "username", user.Username)
	return user.Public(), nil
}

// Login verifies credentials and issues a signed token. The not-found
// message is deliberately the same as the bad-password one so usernames
// cannot be enumerated.
func (s *userService) Login(ctx context.Context, d dto.LoginUser) (string, error) {
	user, err := s.store.Users.FindByUsername(ctx, d.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperr.NotFound("invalid credentials")
		}
		return "", apperr.Internal("failed to look up user", err)
	}

	if !utils.CheckPassword(user.PasswordHash, d.Password) {
		return "", apperr.Unauthorized("invalid credentials")
	}

	token, _, err := s.tokens.Issue(user.ID.Hex(), user.Username)
	if err != nil {
		return "", apperr.Internal("failed to issue token", err)
	}
	return token, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.PublicUser, error) {
	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			return nil, apperr.Validation("invalid user ID format")
		case errors.Is(err, store.ErrNotFound):
			return nil, apperr.NotFound("user not found")
		default:
			return nil, apperr.Internal("failed to load user", err)
		}
	}
	return user.Public(), nil
}

func (s *userService) Update(ctx context.Context, id string, d dto.UpdateUser, requestingUserID string) (*models.PublicUser, error) {
	if requestingUserID != id {
		return nil, apperr.Unauthorized("not authorized to update this user")
	}

	if d.Username != nil {
		existing, err := s.store.Users.FindByUsername(ctx, *d.Username)
		if err == nil && existing.ID.Hex() != id {
			return nil, apperr.Conflict("username is already taken")
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Internal("failed to check username", err)
		}
	}

	upd := store.UserUpdate{Name: d.Name, Username: d.Username}
	if d.Password != nil {
		hash, err := utils.HashPassword(*d.Password)
		if err != nil {
			return nil, apperr.Internal("failed to hash password", err)
		}
		upd.PasswordHash = &hash
	}

	user, err := s.store.Users.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			return nil, apperr.Validation("invalid user ID format")
		case errors.Is(err, store.ErrNotFound):
			return nil, apperr.NotFound("user not found")
		case errors.Is(err, store.ErrDuplicate):
			return nil, apperr.Conflict("username is already taken")
		default:
			return nil, apperr.Internal("failed to update user", err)
		}
	}
	return user.Public(), nil
}

// Delete removes the account and, by policy, that user's posts and comments
// in the relational store. Comments under the user's own posts go with the
// posts through the cascade constraint.
func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.store.Users.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			return apperr.Validation("invalid user ID format")
		case errors.Is(err, store.ErrNotFound):
			return apperr.NotFound("user not found")
		default:
			return apperr.Internal("failed to delete user", err)
		}
	}

	if err := s.store.Posts.DeleteByUser(ctx, id); err != nil {
		return apperr.Internal("failed to delete user posts", err)
	}
	if err := s.store.Comments.DeleteByUser(ctx, id); err != nil {
		return apperr.Internal("failed to delete user comments", err)
	}

	s.log.Infow("user deleted", "user_id", id)
	return nil
}

func (s *userService) List(ctx context.Context, page, limit int) (pagination.Envelope, error) {
	users, total, err := s.store.Users.FindPage(ctx, page, limit)
	if err != nil {
		return pagination.Envelope{}, apperr.Internal("failed to list users", err)
	}

	public := make([]*models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return pagination.NewEnvelope(public, total, page, limit), nil
}
