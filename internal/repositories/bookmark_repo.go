package repositories

import "herbal/internal/models"

// BookmarkRepository defines the interface for bookmark data access.
type BookmarkRepository interface {
	GetByUser(userID string) ([]models.UserBookmark, error)
	Create(bookmark *models.UserBookmark) error
	// Delete removes the first (lowest id) bookmark matching the pair and
	// reports whether one existed.
	Delete(userID string, plantID uint) (bool, error)
}
