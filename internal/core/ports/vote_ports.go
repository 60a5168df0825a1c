package ports

import (
	"context"

	"github.com/election/api/internal/core/domain"
	"github.com/google/uuid"
)

type VoteRepository interface {
	// SaveVote inserts the vote. A uniqueness-constraint violation on the
	// voter reference is reported as domain.ErrAlreadyVoted; a missing
	// candidate reference as domain.ErrCandidateNotFound.
	SaveVote(ctx context.Context, vote *domain.Vote) error
	List(ctx context.Context) ([]domain.Vote, error)
	HasVoted(ctx context.Context, voterID uuid.UUID) (bool, error)
}

type VoteService interface {
	Cast(ctx context.Context, voterID, candidateID uuid.UUID) (*domain.Vote, error)
	List(ctx context.Context) ([]domain.Vote, error)
}
