package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/duoblog/duoblog/models"
)

type gormPostStore struct {
	db *gorm.DB
}

func (s *gormPostStore) Create(ctx context.Context, p *models.Post) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *gormPostStore) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindPage returns one page of posts newest first, with comments preloaded.
// Author hydration happens in the service layer against the user store.
func (s *gormPostStore) FindPage(ctx context.Context, page, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("Comments").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *gormPostStore) Update(ctx context.Context, p *models.Post) error {
	return s.db.WithContext(ctx).Save(p).Error
}

// Delete removes the post row; dependent comments go with it through the
// cascade constraint on comments.post_id.
func (s *gormPostStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormPostStore) DeleteByUser(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Post{}).Error
}
