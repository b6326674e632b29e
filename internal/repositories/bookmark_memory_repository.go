package repositories

import (
	"herbal/internal/models"
)

// MemoryBookmarkRepository is an in-memory implementation of BookmarkRepository.
type MemoryBookmarkRepository struct {
	bookmarks *orderedTable[models.UserBookmark]
}

// NewMemoryBookmarkRepository creates a new, empty MemoryBookmarkRepository.
func NewMemoryBookmarkRepository() *MemoryBookmarkRepository {
	return &MemoryBookmarkRepository{
		bookmarks: newOrderedTable[models.UserBookmark](),
	}
}

// GetByUser returns a user's bookmarks in creation order.
func (r *MemoryBookmarkRepository) GetByUser(userID string) ([]models.UserBookmark, error) {
	return r.bookmarks.filter(func(b models.UserBookmark) bool {
		return b.UserID == userID
	}), nil
}

// Create adds a bookmark. Existing identical pairs are not checked.
func (r *MemoryBookmarkRepository) Create(bookmark *models.UserBookmark) error {
	bookmark.ID = r.bookmarks.add(func(id uint) models.UserBookmark {
		stored := *bookmark
		stored.ID = id
		return stored
	})
	return nil
}

// Delete removes the first bookmark for the pair.
func (r *MemoryBookmarkRepository) Delete(userID string, plantID uint) (bool, error) {
	return r.bookmarks.deleteFirst(func(b models.UserBookmark) bool {
		return b.UserID == userID && b.PlantID == plantID
	}), nil
}
