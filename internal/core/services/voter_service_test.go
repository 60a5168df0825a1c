package services

import (
	"context"
	"testing"

	"github.com/election/api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles []domain.Profile
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.ID.String() == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	profile.ID = uuid.New()
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	return f.profiles, nil
}

func TestListVotersFlagsParticipation(t *testing.T) {
	voted := domain.Profile{ID: uuid.New(), Email: "voted@example.com"}
	abstained := domain.Profile{ID: uuid.New(), Email: "abstained@example.com"}

	profileRepo := &fakeProfileRepo{profiles: []domain.Profile{voted, abstained}}
	voteRepo := &fakeVoteRepo{votes: []domain.Vote{
		{ID: uuid.New(), VoterID: voted.ID, CandidateID: uuid.New()},
	}}

	svc := NewVoterService(profileRepo, voteRepo)

	voters, err := svc.ListVoters(context.Background())
	require.NoError(t, err)

	require.Len(t, voters, 2)
	assert.Equal(t, "voted@example.com", voters[0].Email)
	assert.True(t, voters[0].HasVoted)
	assert.False(t, voters[1].HasVoted)
}

func TestMeReflectsVoteStatus(t *testing.T) {
	profile := domain.Profile{ID: uuid.New(), Email: "me@example.com"}
	profileRepo := &fakeProfileRepo{profiles: []domain.Profile{profile}}
	voteRepo := &fakeVoteRepo{}

	svc := NewVoterService(profileRepo, voteRepo)

	status, err := svc.Me(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.False(t, status.HasVoted)

	voteRepo.hasVoted = true

	status, err = svc.Me(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.True(t, status.HasVoted)
}

func TestMeUnknownProfile(t *testing.T) {
	svc := NewVoterService(&fakeProfileRepo{}, &fakeVoteRepo{})

	_, err := svc.Me(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}
