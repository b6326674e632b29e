package repositories

import (
	"herbal/internal/models"
)

// PlantRepository defines the interface for plant data access.
// Every list method returns plants in insertion (id) order.
type PlantRepository interface {
	GetAll() ([]models.Plant, error)
	GetByID(id uint) (*models.Plant, error)
	// Search matches query as a case-insensitive substring of the common name,
	// botanical name, medicinal uses, region or category.
	Search(query string) ([]models.Plant, error)
	// GetByCategory is an exact, case-insensitive category match.
	GetByCategory(category string) ([]models.Plant, error)
	// GetByRegion is a case-insensitive substring match on region.
	GetByRegion(region string) ([]models.Plant, error)
	Create(plant *models.Plant) error
	Count() (int64, error)
}
