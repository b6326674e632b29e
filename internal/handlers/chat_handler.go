package handlers

import (
	"strings"

	"herbal/internal/models"
	"herbal/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles chat assistant requests.
type ChatHandler struct {
	service  *services.ChatService
	validate *validator.Validate
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the chat route.
func (h *ChatHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/chat", h.HandleChat)
}

// HandleChat answers a free-text question.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Message is required")
	}
	if err := h.validate.Struct(req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Message is too long")
	}

	reply := h.service.Reply(c.UserContext(), req.Message)
	return c.JSON(models.ChatResponse{Response: reply})
}
