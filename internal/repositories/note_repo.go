package repositories

import "herbal/internal/models"

// NoteRepository defines the interface for note data access.
type NoteRepository interface {
	GetByUser(userID string) ([]models.UserNote, error)
	GetByUserAndPlant(userID string, plantID uint) ([]models.UserNote, error)
	Create(note *models.UserNote) error
	// UpdateText replaces the note text and returns the stored note.
	UpdateText(id uint, text string) (*models.UserNote, error)
	Delete(id uint) (bool, error)
}
