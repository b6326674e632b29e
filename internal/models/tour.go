package models

// VirtualTour is a curated, themed sequence of plants.
// PlantIDs are soft references: ids that no longer resolve are skipped by readers.
type VirtualTour struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	ImageURL    string `json:"imageUrl" gorm:"not null"`
	PlantCount  int    `json:"plantCount" gorm:"not null"`
	Duration    string `json:"duration" gorm:"not null"` // e.g. "15 min tour"
	Category    string `json:"category" gorm:"not null"`
	PlantIDs    []uint `json:"plantIds" gorm:"type:text;serializer:json"`
}
