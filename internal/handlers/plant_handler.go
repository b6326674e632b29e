package handlers

import (
	"errors"
	"log"

	"herbal/internal/models"
	"herbal/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PlantHandler handles HTTP requests for plants.
type PlantHandler struct {
	service  *services.PlantService
	modelSvc *services.ModelService
	validate *validator.Validate
}

// NewPlantHandler creates a new PlantHandler. modelService may be nil, in
// which case the model route is not registered.
func NewPlantHandler(service *services.PlantService, modelService *services.ModelService) *PlantHandler {
	return &PlantHandler{
		service:  service,
		modelSvc: modelService,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the plant routes. The fixed-prefix routes come
// before /:id so they are never taken for an id.
func (h *PlantHandler) RegisterRoutes(router fiber.Router) {
	plantRoutes := router.Group("/plants")
	plantRoutes.Get("/", h.HandleGetPlants)
	plantRoutes.Post("/", h.HandleCreatePlant)
	plantRoutes.Get("/search/:query?", h.HandleSearchPlants)
	plantRoutes.Get("/category/:category", h.HandleGetPlantsByCategory)
	plantRoutes.Get("/region/:region", h.HandleGetPlantsByRegion)
	if h.modelSvc != nil {
		plantRoutes.Get("/:id/model", h.HandleGetPlantModel)
	}
	plantRoutes.Get("/:id", h.HandleGetPlantByID)
}

// HandleGetPlants lists all plants.
func (h *PlantHandler) HandleGetPlants(c *fiber.Ctx) error {
	plants, err := h.service.GetAllPlants()
	if err != nil {
		return storeError(c, err, "", "Failed to fetch plants")
	}
	return c.JSON(plants)
}

// HandleGetPlantByID returns one plant.
func (h *PlantHandler) HandleGetPlantByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	plant, err := h.service.GetPlantByID(id)
	if err != nil {
		return storeError(c, err, "Plant not found", "Failed to fetch plant")
	}
	return c.JSON(plant)
}

// HandleSearchPlants matches the query against names, uses, region and
// category. A missing query returns every plant.
func (h *PlantHandler) HandleSearchPlants(c *fiber.Ctx) error {
	plants, err := h.service.SearchPlants(c.Params("query"))
	if err != nil {
		return storeError(c, err, "", "Failed to search plants")
	}
	return c.JSON(plants)
}

// HandleGetPlantsByCategory filters by exact category.
func (h *PlantHandler) HandleGetPlantsByCategory(c *fiber.Ctx) error {
	plants, err := h.service.GetPlantsByCategory(c.Params("category"))
	if err != nil {
		return storeError(c, err, "", "Failed to fetch plants by category")
	}
	return c.JSON(plants)
}

// HandleGetPlantsByRegion filters by region substring.
func (h *PlantHandler) HandleGetPlantsByRegion(c *fiber.Ctx) error {
	plants, err := h.service.GetPlantsByRegion(c.Params("region"))
	if err != nil {
		return storeError(c, err, "", "Failed to fetch plants by region")
	}
	return c.JSON(plants)
}

// HandleCreatePlant validates and stores a new plant.
func (h *PlantHandler) HandleCreatePlant(c *fiber.Ctx) error {
	var plant models.Plant
	if err := bindJSON(c, h.validate, &plant); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	// ids are always assigned by the store
	plant.ID = 0

	if err := h.service.CreatePlant(&plant); err != nil {
		return storeError(c, err, "", "Failed to create plant")
	}
	return c.Status(fiber.StatusCreated).JSON(plant)
}

// HandleGetPlantModel redirects to the plant's 3D model.
func (h *PlantHandler) HandleGetPlantModel(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	url, err := h.modelSvc.ModelURL(c.UserContext(), id)
	if errors.Is(err, services.ErrNoModel) {
		return errorResponse(c, fiber.StatusNotFound, "Plant has no 3D model")
	}
	if err != nil {
		return storeError(c, err, "Plant not found", "Failed to resolve 3D model")
	}
	log.Printf("Resolved 3D model for plant %d", id)
	return c.Redirect(url, fiber.StatusFound)
}
