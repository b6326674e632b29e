package services_test

import (
	"context"

	"herbal/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPlantRepository is a mock implementation of repositories.PlantRepository
type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) GetAll() ([]models.Plant, error) {
	args := m.Called()
	return args.Get(0).([]models.Plant), args.Error(1)
}

func (m *MockPlantRepository) GetByID(id uint) (*models.Plant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plant), args.Error(1)
}

func (m *MockPlantRepository) Search(query string) ([]models.Plant, error) {
	args := m.Called(query)
	return args.Get(0).([]models.Plant), args.Error(1)
}

func (m *MockPlantRepository) GetByCategory(category string) ([]models.Plant, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Plant), args.Error(1)
}

func (m *MockPlantRepository) GetByRegion(region string) ([]models.Plant, error) {
	args := m.Called(region)
	return args.Get(0).([]models.Plant), args.Error(1)
}

func (m *MockPlantRepository) Create(plant *models.Plant) error {
	args := m.Called(plant)
	return args.Error(0)
}

func (m *MockPlantRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockTourRepository is a mock implementation of repositories.TourRepository
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) GetAll() ([]models.VirtualTour, error) {
	args := m.Called()
	return args.Get(0).([]models.VirtualTour), args.Error(1)
}

func (m *MockTourRepository) GetByID(id uint) (*models.VirtualTour, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VirtualTour), args.Error(1)
}

func (m *MockTourRepository) Create(tour *models.VirtualTour) error {
	args := m.Called(tour)
	return args.Error(0)
}

// MockBookmarkRepository is a mock implementation of repositories.BookmarkRepository
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) GetByUser(userID string) ([]models.UserBookmark, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.UserBookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Create(bookmark *models.UserBookmark) error {
	args := m.Called(bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Delete(userID string, plantID uint) (bool, error) {
	args := m.Called(userID, plantID)
	return args.Bool(0), args.Error(1)
}

// MockNoteRepository is a mock implementation of repositories.NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) GetByUser(userID string) ([]models.UserNote, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.UserNote), args.Error(1)
}

func (m *MockNoteRepository) GetByUserAndPlant(userID string, plantID uint) ([]models.UserNote, error) {
	args := m.Called(userID, plantID)
	return args.Get(0).([]models.UserNote), args.Error(1)
}

func (m *MockNoteRepository) Create(note *models.UserNote) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockNoteRepository) UpdateText(id uint, text string) (*models.UserNote, error) {
	args := m.Called(id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserNote), args.Error(1)
}

func (m *MockNoteRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(eventType string, payload interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

// MockAssistant is a mock implementation of services.Assistant
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Generate(ctx context.Context, systemPrompt, message string) (string, error) {
	args := m.Called(ctx, systemPrompt, message)
	return args.String(0), args.Error(1)
}

// MockResolver is a mock implementation of modelstore.Resolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveURL(ctx context.Context, modelPath string) (string, error) {
	args := m.Called(ctx, modelPath)
	return args.String(0), args.Error(1)
}
