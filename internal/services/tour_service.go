package services

import (
	"errors"

	"herbal/internal/models"
	"herbal/internal/repositories"
)

// TourService serves the read-only virtual tours.
type TourService struct {
	tours  repositories.TourRepository
	plants repositories.PlantRepository
}

// NewTourService creates a new TourService.
func NewTourService(tours repositories.TourRepository, plants repositories.PlantRepository) *TourService {
	return &TourService{tours: tours, plants: plants}
}

// GetAllTours retrieves all tours.
func (s *TourService) GetAllTours() ([]models.VirtualTour, error) {
	return s.tours.GetAll()
}

// GetTourByID retrieves a tour by its ID.
func (s *TourService) GetTourByID(id uint) (*models.VirtualTour, error) {
	return s.tours.GetByID(id)
}

// GetTourPlants returns the tour's plants in tour order, skipping ids that
// no longer resolve.
func (s *TourService) GetTourPlants(id uint) ([]models.Plant, error) {
	tour, err := s.tours.GetByID(id)
	if err != nil {
		return nil, err
	}
	return resolvePlants(s.plants, tour.PlantIDs)
}

// resolvePlants looks up each id in order and drops the ones that are gone.
func resolvePlants(repo repositories.PlantRepository, ids []uint) ([]models.Plant, error) {
	plants := make([]models.Plant, 0, len(ids))
	for _, id := range ids {
		plant, err := repo.GetByID(id)
		if errors.Is(err, repositories.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		plants = append(plants, *plant)
	}
	return plants, nil
}
