package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/google/uuid"
)

type candidateService struct {
	repo ports.CandidateRepository
}

func NewCandidateService(repo ports.CandidateRepository) ports.CandidateService {
	return &candidateService{
		repo: repo,
	}
}

func (s *candidateService) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (s *candidateService) Create(ctx context.Context, input ports.CreateCandidateInput) (*domain.Candidate, error) {
	name := strings.TrimSpace(input.Name)
	party := strings.TrimSpace(input.Party)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if party == "" {
		return nil, fmt.Errorf("%w: party is required", domain.ErrInvalidInput)
	}

	candidate := &domain.Candidate{
		ID:          uuid.New(),
		Name:        name,
		Party:       party,
		Description: optional(input.Description),
		PhotoURL:    optional(input.PhotoURL),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Insert(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}

func (s *candidateService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// optional maps a blank field to an explicit absent value instead of
// persisting empty text.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
