package services

import (
	"context"
	"fmt"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/google/uuid"
)

type voterService struct {
	profileRepo ports.ProfileRepository
	voteRepo    ports.VoteRepository
}

func NewVoterService(profileRepo ports.ProfileRepository, voteRepo ports.VoteRepository) ports.VoterService {
	return &voterService{
		profileRepo: profileRepo,
		voteRepo:    voteRepo,
	}
}

func (s *voterService) ListVoters(ctx context.Context) ([]domain.VoterStatus, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	votes, err := s.voteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch votes: %w", err)
	}

	return domain.MarkParticipation(profiles, votes), nil
}

func (s *voterService) Me(ctx context.Context, id uuid.UUID) (*domain.VoterStatus, error) {
	profile, err := s.profileRepo.GetByID(ctx, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	hasVoted, err := s.voteRepo.HasVoted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check vote status: %w", err)
	}

	return &domain.VoterStatus{Profile: *profile, HasVoted: hasVoted}, nil
}
