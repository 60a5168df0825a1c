package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/google/uuid"
)

type voteService struct {
	voteRepo ports.VoteRepository

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewVoteService(voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		voteRepo: voteRepo,
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// Cast records one vote for the calling voter. A voter with a submission
// already pending gets domain.ErrVoteInFlight; a voter who already voted gets
// domain.ErrAlreadyVoted without a write being attempted. A uniqueness
// conflict raised by the store (two submissions racing past the precondition)
// is also reported as domain.ErrAlreadyVoted. The in-flight mark is released
// on every exit path.
func (s *voteService) Cast(ctx context.Context, voterID, candidateID uuid.UUID) (*domain.Vote, error) {
	if !s.begin(voterID) {
		return nil, domain.ErrVoteInFlight
	}
	defer s.end(voterID)

	hasVoted, err := s.voteRepo.HasVoted(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}
	if hasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	vote := &domain.Vote{
		ID:          uuid.New(),
		VoterID:     voterID,
		CandidateID: candidateID,
		CreatedAt:   time.Now(),
	}

	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

func (s *voteService) List(ctx context.Context) ([]domain.Vote, error) {
	votes, err := s.voteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

func (s *voteService) begin(voterID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, pending := s.inFlight[voterID]; pending {
		return false
	}
	s.inFlight[voterID] = struct{}{}
	return true
}

func (s *voteService) end(voterID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, voterID)
}
