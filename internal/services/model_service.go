package services

import (
	"context"
	"errors"
	"fmt"

	"herbal/internal/repositories"
	"herbal/pkg/modelstore"
)

// ErrNoModel is returned for plants without a 3D model.
var ErrNoModel = errors.New("plant has no 3D model")

// ModelService resolves the 3D model of a plant to a fetchable URL.
type ModelService struct {
	plants   repositories.PlantRepository
	resolver modelstore.Resolver
}

// NewModelService creates a new ModelService.
func NewModelService(plants repositories.PlantRepository, resolver modelstore.Resolver) *ModelService {
	return &ModelService{plants: plants, resolver: resolver}
}

// ModelURL returns the URL of the plant's model.
func (s *ModelService) ModelURL(ctx context.Context, plantID uint) (string, error) {
	plant, err := s.plants.GetByID(plantID)
	if err != nil {
		return "", err
	}
	if plant.ModelURL == "" {
		return "", fmt.Errorf("plant %d: %w", plantID, ErrNoModel)
	}
	return s.resolver.ResolveURL(ctx, plant.ModelURL)
}
