package repositories

import "herbal/internal/models"

// TourRepository defines the interface for virtual tour data access.
// Tours are read-only after seeding; Create exists for the seeder.
type TourRepository interface {
	GetAll() ([]models.VirtualTour, error)
	GetByID(id uint) (*models.VirtualTour, error)
	Create(tour *models.VirtualTour) error
}
