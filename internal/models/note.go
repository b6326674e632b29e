package models

import "time"

// UserNote is a free-text note a user attached to a plant.
type UserNote struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"not null;index;type:varchar(64)" validate:"required,max=64"`
	PlantID   uint      `json:"plantId" gorm:"not null;index" validate:"required"`
	Note      string    `json:"note" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// NoteUpdate is the request body for replacing a note's text.
type NoteUpdate struct {
	Note string `json:"note" validate:"required"`
}
