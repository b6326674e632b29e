package handlers

import (
	"herbal/internal/models"
	"herbal/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookmarkHandler handles HTTP requests for bookmarks.
// User ids are taken from the request as-is; there is no session binding.
type BookmarkHandler struct {
	service  *services.BookmarkService
	validate *validator.Validate
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(service *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the bookmark routes.
func (h *BookmarkHandler) RegisterRoutes(router fiber.Router) {
	bookmarkRoutes := router.Group("/bookmarks")
	bookmarkRoutes.Get("/:userId", h.HandleGetUserBookmarks)
	bookmarkRoutes.Post("/", h.HandleAddBookmark)
	bookmarkRoutes.Delete("/:userId/:plantId", h.HandleRemoveBookmark)
}

// HandleGetUserBookmarks returns the plants a user bookmarked.
func (h *BookmarkHandler) HandleGetUserBookmarks(c *fiber.Ctx) error {
	plants, err := h.service.GetUserBookmarks(c.Params("userId"))
	if err != nil {
		return storeError(c, err, "", "Failed to fetch bookmarks")
	}
	return c.JSON(plants)
}

// HandleAddBookmark stores a bookmark.
func (h *BookmarkHandler) HandleAddBookmark(c *fiber.Ctx) error {
	var bookmark models.UserBookmark
	if err := bindJSON(c, h.validate, &bookmark); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	bookmark.ID = 0

	if err := h.service.AddBookmark(&bookmark); err != nil {
		return storeError(c, err, "", "Failed to add bookmark")
	}
	return c.Status(fiber.StatusCreated).JSON(bookmark)
}

// HandleRemoveBookmark deletes one bookmark of the (user, plant) pair.
func (h *BookmarkHandler) HandleRemoveBookmark(c *fiber.Ctx) error {
	plantID, err := idParam(c, "plantId")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	removed, err := h.service.RemoveBookmark(c.Params("userId"), plantID)
	if err != nil {
		return storeError(c, err, "", "Failed to remove bookmark")
	}
	if !removed {
		return errorResponse(c, fiber.StatusNotFound, "Bookmark not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
