package ports

import (
	"context"

	"github.com/election/api/internal/core/domain"
	"github.com/google/uuid"
)

type CandidateRepository interface {
	// List returns all candidates ordered by name ascending.
	List(ctx context.Context) ([]domain.Candidate, error)
	Insert(ctx context.Context, candidate *domain.Candidate) error
	// Delete removes the candidate; associated votes are removed by the
	// database's referential action. Returns domain.ErrCandidateNotFound
	// when no row matches.
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCandidateInput struct {
	Name        string
	Party       string
	Description string
	PhotoURL    string
}

type CandidateService interface {
	List(ctx context.Context) ([]domain.Candidate, error)
	Create(ctx context.Context, input CreateCandidateInput) (*domain.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
