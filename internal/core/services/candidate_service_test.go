package services

import (
	"context"
	"testing"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCandidateRepo struct {
	candidates []domain.Candidate
	insertErr  error
	deleteErr  error
}

func (f *fakeCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	return f.candidates, nil
}

func (f *fakeCandidateRepo) Insert(ctx context.Context, c *domain.Candidate) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.candidates = append(f.candidates, *c)
	return nil
}

func (f *fakeCandidateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, c := range f.candidates {
		if c.ID == id {
			f.candidates = append(f.candidates[:i], f.candidates[i+1:]...)
			return nil
		}
	}
	return domain.ErrCandidateNotFound
}

func TestCreateCandidate(t *testing.T) {
	repo := &fakeCandidateRepo{}
	svc := NewCandidateService(repo)

	candidate, err := svc.Create(context.Background(), ports.CreateCandidateInput{
		Name:        "Alice",
		Party:       "X",
		Description: "Incumbent",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, candidate.ID)
	assert.Equal(t, "Alice", candidate.Name)
	assert.Equal(t, "X", candidate.Party)
	require.NotNil(t, candidate.Description)
	assert.Equal(t, "Incumbent", *candidate.Description)
	assert.Nil(t, candidate.PhotoURL)
}

func TestCreateCandidateRequiresNameAndParty(t *testing.T) {
	repo := &fakeCandidateRepo{}
	svc := NewCandidateService(repo)

	_, err := svc.Create(context.Background(), ports.CreateCandidateInput{Party: "X"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), ports.CreateCandidateInput{Name: "Alice"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), ports.CreateCandidateInput{Name: "   ", Party: "X"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.candidates)
}

func TestCreateCandidateNormalizesBlankOptionals(t *testing.T) {
	repo := &fakeCandidateRepo{}
	svc := NewCandidateService(repo)

	candidate, err := svc.Create(context.Background(), ports.CreateCandidateInput{
		Name:        "Bob",
		Party:       "Y",
		Description: "   ",
		PhotoURL:    "",
	})

	require.NoError(t, err)
	assert.Nil(t, candidate.Description, "blank description should be absent, not empty text")
	assert.Nil(t, candidate.PhotoURL)
}

func TestDeleteCandidateNotFound(t *testing.T) {
	repo := &fakeCandidateRepo{}
	svc := NewCandidateService(repo)

	err := svc.Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrCandidateNotFound)
}
