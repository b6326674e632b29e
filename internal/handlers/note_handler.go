package handlers

import (
	"time"

	"herbal/internal/models"
	"herbal/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	service  *services.NoteService
	validate *validator.Validate
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(service *services.NoteService) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the note routes.
func (h *NoteHandler) RegisterRoutes(router fiber.Router) {
	noteRoutes := router.Group("/notes")
	noteRoutes.Get("/:userId", h.HandleGetUserNotes)
	noteRoutes.Get("/:userId/:plantId", h.HandleGetPlantNotes)
	noteRoutes.Post("/", h.HandleAddNote)
	noteRoutes.Patch("/:id", h.HandleUpdateNote)
	noteRoutes.Delete("/:id", h.HandleDeleteNote)
}

// HandleGetUserNotes lists a user's notes.
func (h *NoteHandler) HandleGetUserNotes(c *fiber.Ctx) error {
	notes, err := h.service.GetUserNotes(c.Params("userId"))
	if err != nil {
		return storeError(c, err, "", "Failed to fetch notes")
	}
	return c.JSON(notes)
}

// HandleGetPlantNotes lists a user's notes on one plant.
func (h *NoteHandler) HandleGetPlantNotes(c *fiber.Ctx) error {
	plantID, err := idParam(c, "plantId")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	notes, err := h.service.GetPlantNotes(c.Params("userId"), plantID)
	if err != nil {
		return storeError(c, err, "", "Failed to fetch plant notes")
	}
	return c.JSON(notes)
}

// HandleAddNote stores a new note.
func (h *NoteHandler) HandleAddNote(c *fiber.Ctx) error {
	var note models.UserNote
	if err := bindJSON(c, h.validate, &note); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	// id and creation time are always assigned server-side
	note.ID = 0
	note.CreatedAt = time.Time{}

	if err := h.service.AddNote(&note); err != nil {
		return storeError(c, err, "", "Failed to add note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// HandleUpdateNote replaces a note's text.
func (h *NoteHandler) HandleUpdateNote(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	var update models.NoteUpdate
	if err := bindJSON(c, h.validate, &update); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	note, err := h.service.UpdateNote(id, update.Note)
	if err != nil {
		return storeError(c, err, "Note not found", "Failed to update note")
	}
	return c.JSON(note)
}

// HandleDeleteNote removes a note.
func (h *NoteHandler) HandleDeleteNote(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	deleted, err := h.service.DeleteNote(id)
	if err != nil {
		return storeError(c, err, "", "Failed to delete note")
	}
	if !deleted {
		return errorResponse(c, fiber.StatusNotFound, "Note not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
