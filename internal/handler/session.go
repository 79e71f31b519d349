package handler

import (
	"eldersafe/internal/domain"
	"eldersafe/internal/dto"
	"eldersafe/internal/logger"
	"eldersafe/internal/service"
	"eldersafe/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	sessions  *service.SessionService
	summaries *service.SummaryService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions *service.SessionService, summaries *service.SummaryService) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		summaries: summaries,
		validator: validation.NewValidator(),
	}
}

// Start handles POST /api/sessions
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateStartSessionRequest(req.Kind, req.Count, req.ClientID); len(errs) > 0 {
		return errs
	}

	session, err := h.sessions.Start(c.Context(), domain.Kind(req.Kind), req.Count, req.ClientID)
	if err != nil {
		logger.Get().Error("Failed to start session",
			zap.Error(err), zap.String("kind", req.Kind))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewSessionView(session))
}

// Get handles GET /api/sessions/:id
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionView(session))
}

// Answer handles POST /api/sessions/:id/answers
func (h *SessionHandler) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if req.IsMalicious == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("isMalicious")}
	}

	outcome, _, err := h.sessions.Answer(c.Context(), sessionID(c), *req.IsMalicious)
	if err != nil {
		return err
	}

	return c.JSON(dto.OutcomeResponse{
		Correct:     outcome.Correct,
		GroundTruth: outcome.IsMalicious,
		Explanation: outcome.Explanation,
	})
}

// Advance handles POST /api/sessions/:id/advance
func (h *SessionHandler) Advance(c *fiber.Ctx) error {
	session, err := h.sessions.Advance(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionView(session))
}

// GoToStep handles POST /api/sessions/:id/step
func (h *SessionHandler) GoToStep(c *fiber.Ctx) error {
	var req dto.StepRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if req.Step == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("step")}
	}

	session, err := h.sessions.GoTo(c.Context(), sessionID(c), *req.Step)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionView(session))
}

// Results handles GET /api/sessions/:id/results
func (h *SessionHandler) Results(c *fiber.Ctx) error {
	result, err := h.sessions.Results(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Summary handles POST /api/sessions/:id/summary
func (h *SessionHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.summaries.Summarize(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

// sessionID returns the validated session ID stored by the validation
// middleware, falling back to the raw path parameter.
func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals("validated_session_id").(string); ok && id != "" {
		return id
	}
	return c.Params("id")
}
