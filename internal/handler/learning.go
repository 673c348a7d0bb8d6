package handler

import (
	"github.com/REVAN05072006/explainify/internal/domain"
	"github.com/REVAN05072006/explainify/internal/dto"
	"github.com/REVAN05072006/explainify/internal/logger"
	"github.com/REVAN05072006/explainify/internal/service"
	"github.com/REVAN05072006/explainify/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LearningHandler handles learning-content endpoints
type LearningHandler struct {
	service   service.LearningService
	validator *validation.Validator
}

// NewLearningHandler creates a new LearningHandler instance
func NewLearningHandler(service service.LearningService) *LearningHandler {
	return &LearningHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateContent handles POST /api/generate. Errors propagate to the app's
// ErrorHandler, which owns status mapping and the flattened error envelope.
func (h *LearningHandler) GenerateContent(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	topic, err := h.validator.ValidateTopic(req.Topic)
	if err != nil {
		return err
	}

	doc, err := h.service.GenerateContent(c.Context(), topic)
	if err != nil {
		logger.Get().Error("Content generation failed",
			zap.String("topic", topic), zap.Error(err))
		return err
	}
	return c.JSON(doc)
}

// Health handles GET /api/health
func (h *LearningHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
