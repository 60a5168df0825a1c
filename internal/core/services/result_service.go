package services

import (
	"context"
	"fmt"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
)

type resultService struct {
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
}

func NewResultService(candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository) ports.ResultService {
	return &resultService{
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

// Tally fetches fresh candidate and vote rows and derives the ranked counts.
// Nothing is cached or materialized between calls.
func (s *resultService) Tally(ctx context.Context) ([]domain.TallyEntry, error) {
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	votes, err := s.voteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch votes: %w", err)
	}

	return domain.ComputeTally(candidates, votes), nil
}
