package services

import (
	"herbal/internal/models"
	"herbal/internal/repositories"
)

// BookmarkService manages users' saved plants.
type BookmarkService struct {
	bookmarks repositories.BookmarkRepository
	plants    repositories.PlantRepository
	events    EventPublisher
}

// NewBookmarkService creates a new BookmarkService. events may be nil.
func NewBookmarkService(bookmarks repositories.BookmarkRepository, plants repositories.PlantRepository, events EventPublisher) *BookmarkService {
	return &BookmarkService{
		bookmarks: bookmarks,
		plants:    plants,
		events:    events,
	}
}

// GetUserBookmarks returns the bookmarked plants of a user. Bookmarks whose
// plant no longer exists are dropped.
func (s *BookmarkService) GetUserBookmarks(userID string) ([]models.Plant, error) {
	bookmarks, err := s.bookmarks.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.PlantID)
	}
	return resolvePlants(s.plants, ids)
}

// AddBookmark stores a bookmark. Neither the pair's uniqueness nor the
// plant's existence is checked.
func (s *BookmarkService) AddBookmark(bookmark *models.UserBookmark) error {
	if err := s.bookmarks.Create(bookmark); err != nil {
		return err
	}
	publish(s.events, EventBookmarkAdded, bookmark)
	return nil
}

// RemoveBookmark deletes the first matching bookmark and reports whether one
// was found.
func (s *BookmarkService) RemoveBookmark(userID string, plantID uint) (bool, error) {
	removed, err := s.bookmarks.Delete(userID, plantID)
	if err != nil {
		return false, err
	}
	if removed {
		publish(s.events, EventBookmarkRemoved, models.UserBookmark{UserID: userID, PlantID: plantID})
	}
	return removed, nil
}
