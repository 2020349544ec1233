// Package store is the data-access facade over the two datastores: GORM on
// MySQL for posts and comments, mongo-driver for users. Services receive a
// *Store at construction; there is no global handle registry, so querying
// before initialization is impossible by construction.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/duoblog/duoblog/models"
)

// Sentinel errors the concrete stores translate driver failures into.
// Services map them onto the typed error taxonomy.
var (
	ErrNotFound  = errors.New("store: not found")
	ErrInvalidID = errors.New("store: invalid identifier")
	ErrDuplicate = errors.New("store: duplicate key")
)

// UserUpdate lists the mutable user fields; nil means unchanged.
type UserUpdate struct {
	Name         *string
	Username     *string
	PasswordHash *string
}

// UserStore accesses the user documents in MongoDB.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindPage(ctx context.Context, page, limit int) ([]models.User, int64, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// PostStore accesses the posts table.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	FindPage(ctx context.Context, page, limit int) ([]models.Post, int64, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID string) error
}

// CommentStore accesses the comments table.
type CommentStore interface {
	Create(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id uint) (*models.Comment, error)
	FindPageByPost(ctx context.Context, postID uint, page, limit int) ([]models.Comment, int64, error)
	Update(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID string) error
}

// Store bundles the three resource stores and owns connection lifecycle.
type Store struct {
	Users    UserStore
	Posts    PostStore
	Comments CommentStore

	db     *gorm.DB
	client *mongo.Client
}

// New wires the concrete stores over already-connected handles.
func New(ctx context.Context, db *gorm.DB, client *mongo.Client, mongoDB string) (*Store, error) {
	users, err := newMongoUserStore(ctx, client.Database(mongoDB).Collection("users"))
	if err != nil {
		return nil, err
	}
	return &Store{
		Users:    users,
		Posts:    &gormPostStore{db: db},
		Comments: &gormCommentStore{db: db},
		db:       db,
		client:   client,
	}, nil
}

// Close releases both database connections.
func (s *Store) Close(ctx context.Context) error {
	var firstErr error
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				firstErr = err
			}
		}
	}
	if s.client != nil {
		if err := s.client.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
