// Package repository implements the data access layer for the application.
package repository

import (
	"context"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow relations.
type FollowRepository interface {
	// Create inserts the relation. Store-level integrity violations
	// (duplicate pair, self-follow check) surface as ConflictError.
	Create(ctx context.Context, follow *models.Follow) error
	Exists(ctx context.Context, userID, authorID uint) (bool, error)
	// Delete removes the relation if present and reports whether a row was removed.
	Delete(ctx context.Context, userID, authorID uint) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already following this author")
		}
		if isCheckConstraintError(err) {
			return models.NewConflictError("You cannot follow yourself")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, userID, authorID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
