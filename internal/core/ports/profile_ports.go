package ports

import (
	"context"

	"github.com/election/api/internal/core/domain"
)

type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) error
	// List returns all profiles ordered by registration time descending.
	List(ctx context.Context) ([]domain.Profile, error)
}
