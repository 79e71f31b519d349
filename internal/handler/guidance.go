package handler

import (
	"eldersafe/internal/domain"
	"eldersafe/internal/dto"
	"eldersafe/internal/service"
	"eldersafe/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GuidanceHandler handles safety guidance HTTP requests
type GuidanceHandler struct {
	guidance  *service.GuidanceService
	validator *validation.Validator
}

// NewGuidanceHandler creates a new GuidanceHandler instance
func NewGuidanceHandler(guidance *service.GuidanceService) *GuidanceHandler {
	return &GuidanceHandler{
		guidance:  guidance,
		validator: validation.NewValidator(),
	}
}

// Ask handles POST /api/guidance
func (h *GuidanceHandler) Ask(c *fiber.Ctx) error {
	var req dto.GuidanceRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateGuidanceRequest(req.Question); len(errs) > 0 {
		return errs
	}

	tip, err := h.guidance.Ask(c.Context(), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(dto.GuidanceResponse{Tip: tip})
}

// Kinds handles GET /api/kinds
func Kinds(c *fiber.Ctx) error {
	kinds := domain.Kinds()
	views := make([]dto.KindView, 0, len(kinds))
	for _, k := range kinds {
		views = append(views, dto.KindView{ID: string(k), Title: k.DisplayName()})
	}
	return c.JSON(views)
}
