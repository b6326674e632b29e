package services

import (
	"herbal/internal/models"
	"herbal/internal/repositories"
)

// NoteService manages users' plant notes.
type NoteService struct {
	notes  repositories.NoteRepository
	events EventPublisher
}

// NewNoteService creates a new NoteService. events may be nil.
func NewNoteService(notes repositories.NoteRepository, events EventPublisher) *NoteService {
	return &NoteService{notes: notes, events: events}
}

// GetUserNotes returns all notes of a user.
func (s *NoteService) GetUserNotes(userID string) ([]models.UserNote, error) {
	return s.notes.GetByUser(userID)
}

// GetPlantNotes returns a user's notes on one plant.
func (s *NoteService) GetPlantNotes(userID string, plantID uint) ([]models.UserNote, error) {
	return s.notes.GetByUserAndPlant(userID, plantID)
}

// AddNote stores a note; ID and CreatedAt are assigned by the store.
func (s *NoteService) AddNote(note *models.UserNote) error {
	if err := s.notes.Create(note); err != nil {
		return err
	}
	publish(s.events, EventNoteAdded, note)
	return nil
}

// UpdateNote replaces the text of a note, leaving every other field intact.
func (s *NoteService) UpdateNote(id uint, text string) (*models.UserNote, error) {
	note, err := s.notes.UpdateText(id, text)
	if err != nil {
		return nil, err
	}
	publish(s.events, EventNoteUpdated, note)
	return note, nil
}

// DeleteNote removes a note and reports whether it existed.
func (s *NoteService) DeleteNote(id uint) (bool, error) {
	deleted, err := s.notes.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		publish(s.events, EventNoteDeleted, map[string]uint{"id": id})
	}
	return deleted, nil
}
