package service

import (
	"context"

	"eldersafe/internal/domain"
)

// GuidanceService answers free-form safety questions through the
// configured guidance backend.
type GuidanceService struct {
	backend domain.GuidanceService
}

// NewGuidanceService creates a new GuidanceService.
func NewGuidanceService(backend domain.GuidanceService) *GuidanceService {
	return &GuidanceService{backend: backend}
}

// Ask returns one short safety tip for the question.
func (s *GuidanceService) Ask(ctx context.Context, question string) (string, error) {
	return s.backend.GetGuidance(ctx, question)
}
