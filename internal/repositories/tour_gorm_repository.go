package repositories

import (
	"errors"
	"fmt"

	"herbal/internal/models"

	"gorm.io/gorm"
)

// GORMTourRepository is a GORM implementation of TourRepository.
type GORMTourRepository struct {
	db *gorm.DB
}

// NewGORMTourRepository creates a new instance of GORMTourRepository.
func NewGORMTourRepository(db *gorm.DB) *GORMTourRepository {
	return &GORMTourRepository{db: db}
}

// GetAll retrieves all tours ordered by ID.
func (r *GORMTourRepository) GetAll() ([]models.VirtualTour, error) {
	tours := []models.VirtualTour{}
	if err := r.db.Order("id").Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to get all virtual tours: %w", err)
	}
	return tours, nil
}

// GetByID retrieves a tour by its ID.
func (r *GORMTourRepository) GetByID(id uint) (*models.VirtualTour, error) {
	var tour models.VirtualTour
	if err := r.db.First(&tour, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("virtual tour with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get virtual tour by ID %d: %w", id, err)
	}
	return &tour, nil
}

// Create inserts a tour.
func (r *GORMTourRepository) Create(tour *models.VirtualTour) error {
	tour.ID = 0
	if err := r.db.Create(tour).Error; err != nil {
		return fmt.Errorf("failed to create virtual tour: %w", err)
	}
	return nil
}
