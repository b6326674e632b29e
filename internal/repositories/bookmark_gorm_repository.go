package repositories

import (
	"errors"
	"fmt"

	"herbal/internal/models"

	"gorm.io/gorm"
)

// GORMBookmarkRepository is a GORM implementation of BookmarkRepository.
type GORMBookmarkRepository struct {
	db *gorm.DB
}

// NewGORMBookmarkRepository creates a new instance of GORMBookmarkRepository.
func NewGORMBookmarkRepository(db *gorm.DB) *GORMBookmarkRepository {
	return &GORMBookmarkRepository{db: db}
}

// GetByUser retrieves a user's bookmarks in creation order.
func (r *GORMBookmarkRepository) GetByUser(userID string) ([]models.UserBookmark, error) {
	bookmarks := []models.UserBookmark{}
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("failed to get bookmarks for user %s: %w", userID, err)
	}
	return bookmarks, nil
}

// Create inserts a bookmark.
func (r *GORMBookmarkRepository) Create(bookmark *models.UserBookmark) error {
	bookmark.ID = 0
	if err := r.db.Create(bookmark).Error; err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// Delete removes the oldest bookmark for the pair.
func (r *GORMBookmarkRepository) Delete(userID string, plantID uint) (bool, error) {
	var bookmark models.UserBookmark
	err := r.db.Where("user_id = ? AND plant_id = ?", userID, plantID).Order("id").First(&bookmark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to find bookmark: %w", err)
	}

	res := r.db.Delete(&models.UserBookmark{}, "id = ?", bookmark.ID)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete bookmark: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
