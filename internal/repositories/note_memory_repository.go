package repositories

import (
	"fmt"
	"time"

	"herbal/internal/models"
)

// MemoryNoteRepository is an in-memory implementation of NoteRepository.
type MemoryNoteRepository struct {
	notes *orderedTable[models.UserNote]
	now   func() time.Time
}

// NewMemoryNoteRepository creates a new, empty MemoryNoteRepository.
func NewMemoryNoteRepository() *MemoryNoteRepository {
	return &MemoryNoteRepository{
		notes: newOrderedTable[models.UserNote](),
		now:   time.Now,
	}
}

// GetByUser returns all notes of a user.
func (r *MemoryNoteRepository) GetByUser(userID string) ([]models.UserNote, error) {
	return r.notes.filter(func(n models.UserNote) bool {
		return n.UserID == userID
	}), nil
}

// GetByUserAndPlant returns a user's notes on a single plant.
func (r *MemoryNoteRepository) GetByUserAndPlant(userID string, plantID uint) ([]models.UserNote, error) {
	return r.notes.filter(func(n models.UserNote) bool {
		return n.UserID == userID && n.PlantID == plantID
	}), nil
}

// Create stores a note, assigning its ID and creation time.
func (r *MemoryNoteRepository) Create(note *models.UserNote) error {
	note.CreatedAt = r.now().UTC()
	note.ID = r.notes.add(func(id uint) models.UserNote {
		stored := *note
		stored.ID = id
		return stored
	})
	return nil
}

// UpdateText replaces the text of an existing note.
func (r *MemoryNoteRepository) UpdateText(id uint, text string) (*models.UserNote, error) {
	note, ok := r.notes.update(id, func(n *models.UserNote) {
		n.Note = text
	})
	if !ok {
		return nil, fmt.Errorf("note with ID %d: %w", id, ErrNotFound)
	}
	return &note, nil
}

// Delete removes a note by its ID.
func (r *MemoryNoteRepository) Delete(id uint) (bool, error) {
	return r.notes.delete(id), nil
}
