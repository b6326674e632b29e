package repositories

import (
	"errors"
	"fmt"
	"time"

	"herbal/internal/models"

	"gorm.io/gorm"
)

// GORMNoteRepository is a GORM implementation of NoteRepository.
type GORMNoteRepository struct {
	db *gorm.DB
}

// NewGORMNoteRepository creates a new instance of GORMNoteRepository.
func NewGORMNoteRepository(db *gorm.DB) *GORMNoteRepository {
	return &GORMNoteRepository{db: db}
}

// GetByUser retrieves all notes of a user.
func (r *GORMNoteRepository) GetByUser(userID string) ([]models.UserNote, error) {
	notes := []models.UserNote{}
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to get notes for user %s: %w", userID, err)
	}
	return notes, nil
}

// GetByUserAndPlant retrieves a user's notes on one plant.
func (r *GORMNoteRepository) GetByUserAndPlant(userID string, plantID uint) ([]models.UserNote, error) {
	notes := []models.UserNote{}
	err := r.db.Where("user_id = ? AND plant_id = ?", userID, plantID).Order("id").Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notes for user %s and plant %d: %w", userID, plantID, err)
	}
	return notes, nil
}

// Create inserts a note. Any caller-supplied CreatedAt is discarded so
// GORM's autoCreateTime stamps the server time.
func (r *GORMNoteRepository) Create(note *models.UserNote) error {
	note.ID = 0
	note.CreatedAt = time.Time{}
	if err := r.db.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// UpdateText replaces only the note column.
func (r *GORMNoteRepository) UpdateText(id uint, text string) (*models.UserNote, error) {
	res := r.db.Model(&models.UserNote{}).Where("id = ?", id).Update("note", text)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update note %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("note with ID %d: %w", id, ErrNotFound)
	}

	var note models.UserNote
	if err := r.db.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("note with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to reload note %d: %w", id, err)
	}
	return &note, nil
}

// Delete removes a note by its ID.
func (r *GORMNoteRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.UserNote{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete note %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
