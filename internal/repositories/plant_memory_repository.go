package repositories

import (
	"fmt"
	"slices"

	"herbal/internal/models"
)

// MemoryPlantRepository is an in-memory implementation of PlantRepository.
type MemoryPlantRepository struct {
	plants *orderedTable[models.Plant]
}

// NewMemoryPlantRepository creates a new, empty MemoryPlantRepository.
func NewMemoryPlantRepository() *MemoryPlantRepository {
	return &MemoryPlantRepository{
		plants: newOrderedTable[models.Plant](),
	}
}

// GetAll returns all plants.
func (r *MemoryPlantRepository) GetAll() ([]models.Plant, error) {
	return clonePlants(r.plants.filter(nil)), nil
}

// GetByID returns a plant by its ID.
func (r *MemoryPlantRepository) GetByID(id uint) (*models.Plant, error) {
	plant, ok := r.plants.get(id)
	if !ok {
		return nil, fmt.Errorf("plant with ID %d: %w", id, ErrNotFound)
	}
	plant.PreparationMethods = slices.Clone(plant.PreparationMethods)
	return &plant, nil
}

// Search returns plants whose searchable fields contain query.
func (r *MemoryPlantRepository) Search(query string) ([]models.Plant, error) {
	return clonePlants(r.plants.filter(searchMatcher(query))), nil
}

// GetByCategory returns plants whose category equals category, ignoring case.
func (r *MemoryPlantRepository) GetByCategory(category string) ([]models.Plant, error) {
	return clonePlants(r.plants.filter(categoryMatcher(category))), nil
}

// GetByRegion returns plants whose region contains region, ignoring case.
func (r *MemoryPlantRepository) GetByRegion(region string) ([]models.Plant, error) {
	return clonePlants(r.plants.filter(regionMatcher(region))), nil
}

// Create stores a plant under the next sequential ID.
func (r *MemoryPlantRepository) Create(plant *models.Plant) error {
	plant.ID = r.plants.add(func(id uint) models.Plant {
		stored := *plant
		stored.ID = id
		stored.PreparationMethods = slices.Clone(plant.PreparationMethods)
		return stored
	})
	return nil
}

// Count returns the number of stored plants.
func (r *MemoryPlantRepository) Count() (int64, error) {
	return int64(r.plants.len()), nil
}

func clonePlants(plants []models.Plant) []models.Plant {
	for i := range plants {
		plants[i].PreparationMethods = slices.Clone(plants[i].PreparationMethods)
	}
	return plants
}
