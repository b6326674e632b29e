package services

import (
	"herbal/internal/models"
	"herbal/internal/repositories"
)

// PlantService handles plant queries and creation.
type PlantService struct {
	repo   repositories.PlantRepository
	events EventPublisher
}

// NewPlantService creates a new PlantService. events may be nil.
func NewPlantService(repo repositories.PlantRepository, events EventPublisher) *PlantService {
	return &PlantService{
		repo:   repo,
		events: events,
	}
}

// GetAllPlants retrieves all plants.
func (s *PlantService) GetAllPlants() ([]models.Plant, error) {
	return s.repo.GetAll()
}

// GetPlantByID retrieves a single plant by its ID.
func (s *PlantService) GetPlantByID(id uint) (*models.Plant, error) {
	return s.repo.GetByID(id)
}

// SearchPlants returns plants matching query; an empty query matches all.
func (s *PlantService) SearchPlants(query string) ([]models.Plant, error) {
	return s.repo.Search(query)
}

// GetPlantsByCategory returns plants in exactly this category (any case).
func (s *PlantService) GetPlantsByCategory(category string) ([]models.Plant, error) {
	return s.repo.GetByCategory(category)
}

// GetPlantsByRegion returns plants whose region contains region (any case).
func (s *PlantService) GetPlantsByRegion(region string) ([]models.Plant, error) {
	return s.repo.GetByRegion(region)
}

// CreatePlant fills defaults, stores the plant and assigns its ID.
func (s *PlantService) CreatePlant(plant *models.Plant) error {
	if plant.PreparationMethods == nil {
		plant.PreparationMethods = []string{}
	}
	if err := s.repo.Create(plant); err != nil {
		return err
	}
	publish(s.events, EventPlantCreated, plant)
	return nil
}
