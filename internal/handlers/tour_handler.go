package handlers

import (
	"herbal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TourHandler handles HTTP requests for virtual tours.
type TourHandler struct {
	service *services.TourService
}

// NewTourHandler creates a new TourHandler.
func NewTourHandler(service *services.TourService) *TourHandler {
	return &TourHandler{service: service}
}

// RegisterRoutes registers the tour routes.
func (h *TourHandler) RegisterRoutes(router fiber.Router) {
	tourRoutes := router.Group("/tours")
	tourRoutes.Get("/", h.HandleGetTours)
	tourRoutes.Get("/:id", h.HandleGetTourByID)
	tourRoutes.Get("/:id/plants", h.HandleGetTourPlants)
}

// HandleGetTours lists all tours.
func (h *TourHandler) HandleGetTours(c *fiber.Ctx) error {
	tours, err := h.service.GetAllTours()
	if err != nil {
		return storeError(c, err, "", "Failed to fetch tours")
	}
	return c.JSON(tours)
}

// HandleGetTourByID returns one tour.
func (h *TourHandler) HandleGetTourByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	tour, err := h.service.GetTourByID(id)
	if err != nil {
		return storeError(c, err, "Tour not found", "Failed to fetch tour")
	}
	return c.JSON(tour)
}

// HandleGetTourPlants returns the plants of a tour in tour order.
func (h *TourHandler) HandleGetTourPlants(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	plants, err := h.service.GetTourPlants(id)
	if err != nil {
		return storeError(c, err, "Tour not found", "Failed to fetch tour plants")
	}
	return c.JSON(plants)
}
