package services_test

import (
	"fmt"
	"testing"

	"herbal/internal/models"
	"herbal/internal/repositories"
	"herbal/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestTourService_GetAllTours(t *testing.T) {
	mockTours := new(MockTourRepository)
	service := services.NewTourService(mockTours, new(MockPlantRepository))

	expected := []models.VirtualTour{{ID: 1, Title: "Immunity Boosters", PlantIDs: []uint{2, 5, 7}}}
	mockTours.On("GetAll").Return(expected, nil).Once()

	tours, err := service.GetAllTours()
	assert.NoError(t, err)
	assert.Equal(t, expected, tours)
	mockTours.AssertExpectations(t)
}

func TestTourService_GetTourByID_NotFound(t *testing.T) {
	mockTours := new(MockTourRepository)
	service := services.NewTourService(mockTours, new(MockPlantRepository))

	mockTours.On("GetByID", uint(42)).Return(nil, repositories.ErrNotFound).Once()

	tour, err := service.GetTourByID(42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, tour)
}

func TestTourService_GetTourPlants(t *testing.T) {
	mockTours := new(MockTourRepository)
	mockPlants := new(MockPlantRepository)
	service := services.NewTourService(mockTours, mockPlants)

	mockTours.On("GetByID", uint(1)).Return(&models.VirtualTour{ID: 1, PlantIDs: []uint{7, 99, 2}}, nil).Once()
	mockPlants.On("GetByID", uint(7)).Return(&models.Plant{ID: 7, CommonName: "Giloy"}, nil).Once()
	mockPlants.On("GetByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()
	mockPlants.On("GetByID", uint(2)).Return(&models.Plant{ID: 2, CommonName: "Tulsi"}, nil).Once()

	plants, err := service.GetTourPlants(1)
	assert.NoError(t, err)
	assert.Equal(t, []models.Plant{{ID: 7, CommonName: "Giloy"}, {ID: 2, CommonName: "Tulsi"}}, plants)
	mockTours.AssertExpectations(t)
	mockPlants.AssertExpectations(t)
}

func TestTourService_GetTourPlants_StoreError(t *testing.T) {
	mockTours := new(MockTourRepository)
	mockPlants := new(MockPlantRepository)
	service := services.NewTourService(mockTours, mockPlants)

	mockTours.On("GetByID", uint(1)).Return(&models.VirtualTour{ID: 1, PlantIDs: []uint{1}}, nil).Once()
	mockPlants.On("GetByID", uint(1)).Return(nil, fmt.Errorf("connection reset")).Once()

	plants, err := service.GetTourPlants(1)
	assert.Error(t, err)
	assert.Nil(t, plants)
}
