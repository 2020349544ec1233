package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/duoblog/duoblog/models"
)

type gormCommentStore struct {
	db *gorm.DB
}

func (s *gormCommentStore) Create(ctx context.Context, c *models.Comment) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *gormCommentStore) FindByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// FindPageByPost returns one page of a post's comments, newest first.
func (s *gormCommentStore) FindPageByPost(ctx context.Context, postID uint, page, limit int) ([]models.Comment, int64, error) {
	var total int64
	q := s.db.WithContext(ctx).Model(&models.Comment{}).Where("post_id = ?", postID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *gormCommentStore) Update(ctx context.Context, c *models.Comment) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *gormCommentStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormCommentStore) DeleteByUser(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Comment{}).Error
}
