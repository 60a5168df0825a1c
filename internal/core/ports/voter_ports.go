package ports

import (
	"context"

	"github.com/election/api/internal/core/domain"
	"github.com/google/uuid"
)

type VoterService interface {
	// ListVoters returns every registered profile with its derived
	// participation flag, ordered by registration time descending.
	ListVoters(ctx context.Context) ([]domain.VoterStatus, error)
	Me(ctx context.Context, id uuid.UUID) (*domain.VoterStatus, error)
}

type ResultService interface {
	// Tally recomputes the ranked vote counts from fresh rows.
	Tally(ctx context.Context) ([]domain.TallyEntry, error)
}
