package services_test

import (
	"fmt"
	"testing"

	"herbal/internal/models"
	"herbal/internal/repositories"
	"herbal/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlantService_GetAllPlants(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	service := services.NewPlantService(mockRepo, nil)

	expectedPlants := []models.Plant{
		{ID: 1, CommonName: "Turmeric", Category: "Anti-inflammatory"},
		{ID: 2, CommonName: "Tulsi", Category: "Respiratory"},
	}

	mockRepo.On("GetAll").Return(expectedPlants, nil).Once()

	plants, err := service.GetAllPlants()

	assert.NoError(t, err)
	assert.Len(t, plants, 2)
	assert.Equal(t, expectedPlants, plants)
	mockRepo.AssertExpectations(t)
}

func TestPlantService_GetPlantByID(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	service := services.NewPlantService(mockRepo, nil)

	expectedPlant := &models.Plant{ID: 1, CommonName: "Turmeric"}

	mockRepo.On("GetByID", uint(1)).Return(expectedPlant, nil).Once()
	plant, err := service.GetPlantByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedPlant, plant)

	mockRepo.On("GetByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()
	plant, err = service.GetPlantByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, plant)
	mockRepo.AssertExpectations(t)
}

func TestPlantService_Filters(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	service := services.NewPlantService(mockRepo, nil)

	neem := []models.Plant{{ID: 3, CommonName: "Neem", Region: "India, Myanmar", Category: "Skin Care"}}

	mockRepo.On("Search", "neem").Return(neem, nil).Once()
	mockRepo.On("GetByCategory", "skin care").Return(neem, nil).Once()
	mockRepo.On("GetByRegion", "myanmar").Return(neem, nil).Once()

	plants, err := service.SearchPlants("neem")
	assert.NoError(t, err)
	assert.Equal(t, neem, plants)

	plants, err = service.GetPlantsByCategory("skin care")
	assert.NoError(t, err)
	assert.Equal(t, neem, plants)

	plants, err = service.GetPlantsByRegion("myanmar")
	assert.NoError(t, err)
	assert.Equal(t, neem, plants)
	mockRepo.AssertExpectations(t)
}

func TestPlantService_CreatePlant(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	mockEvents := new(MockPublisher)
	service := services.NewPlantService(mockRepo, mockEvents)

	newPlant := &models.Plant{CommonName: "Brahmi", BotanicalName: "Bacopa monnieri"}

	mockRepo.On("Create", newPlant).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Plant).ID = 9
	}).Return(nil).Once()
	mockEvents.On("PublishEvent", services.EventPlantCreated, newPlant).Return(nil).Once()

	err := service.CreatePlant(newPlant)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), newPlant.ID)
	assert.NotNil(t, newPlant.PreparationMethods)
	assert.Empty(t, newPlant.PreparationMethods)
	assert.False(t, newPlant.IsPopular)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestPlantService_CreatePlant_Failure(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	mockEvents := new(MockPublisher)
	service := services.NewPlantService(mockRepo, mockEvents)

	newPlant := &models.Plant{CommonName: "Brahmi"}

	mockRepo.On("Create", newPlant).Return(fmt.Errorf("database error")).Once()
	err := service.CreatePlant(newPlant)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockEvents.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
}

func TestPlantService_CreatePlant_PublishFailureIgnored(t *testing.T) {
	mockRepo := new(MockPlantRepository)
	mockEvents := new(MockPublisher)
	service := services.NewPlantService(mockRepo, mockEvents)

	newPlant := &models.Plant{CommonName: "Brahmi"}

	mockRepo.On("Create", newPlant).Return(nil).Once()
	mockEvents.On("PublishEvent", services.EventPlantCreated, newPlant).Return(fmt.Errorf("channel closed")).Once()

	assert.NoError(t, service.CreatePlant(newPlant))
	mockEvents.AssertExpectations(t)
}
