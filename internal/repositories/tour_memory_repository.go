package repositories

import (
	"fmt"
	"slices"

	"herbal/internal/models"
)

// MemoryTourRepository is an in-memory implementation of TourRepository.
type MemoryTourRepository struct {
	tours *orderedTable[models.VirtualTour]
}

// NewMemoryTourRepository creates a new, empty MemoryTourRepository.
func NewMemoryTourRepository() *MemoryTourRepository {
	return &MemoryTourRepository{
		tours: newOrderedTable[models.VirtualTour](),
	}
}

// GetAll returns all tours.
func (r *MemoryTourRepository) GetAll() ([]models.VirtualTour, error) {
	tours := r.tours.filter(nil)
	for i := range tours {
		tours[i].PlantIDs = slices.Clone(tours[i].PlantIDs)
	}
	return tours, nil
}

// GetByID returns a tour by its ID.
func (r *MemoryTourRepository) GetByID(id uint) (*models.VirtualTour, error) {
	tour, ok := r.tours.get(id)
	if !ok {
		return nil, fmt.Errorf("virtual tour with ID %d: %w", id, ErrNotFound)
	}
	tour.PlantIDs = slices.Clone(tour.PlantIDs)
	return &tour, nil
}

// Create stores a tour under the next sequential ID.
func (r *MemoryTourRepository) Create(tour *models.VirtualTour) error {
	tour.ID = r.tours.add(func(id uint) models.VirtualTour {
		stored := *tour
		stored.ID = id
		stored.PlantIDs = slices.Clone(tour.PlantIDs)
		return stored
	})
	return nil
}
