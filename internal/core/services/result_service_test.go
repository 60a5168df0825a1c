package services

import (
	"context"
	"testing"

	"github.com/election/api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyFromFreshRows(t *testing.T) {
	alice := domain.Candidate{ID: uuid.New(), Name: "Alice", Party: "X"}
	bob := domain.Candidate{ID: uuid.New(), Name: "Bob", Party: "Y"}

	candidateRepo := &fakeCandidateRepo{candidates: []domain.Candidate{alice, bob}}
	voteRepo := &fakeVoteRepo{votes: []domain.Vote{
		{ID: uuid.New(), VoterID: uuid.New(), CandidateID: bob.ID},
		{ID: uuid.New(), VoterID: uuid.New(), CandidateID: bob.ID},
		{ID: uuid.New(), VoterID: uuid.New(), CandidateID: alice.ID},
	}}

	svc := NewResultService(candidateRepo, voteRepo)

	tally, err := svc.Tally(context.Background())
	require.NoError(t, err)

	require.Len(t, tally, 2)
	assert.Equal(t, "Bob", tally[0].Name)
	assert.Equal(t, int64(2), tally[0].Count)
	assert.Equal(t, "Alice", tally[1].Name)
	assert.Equal(t, int64(1), tally[1].Count)
}

func TestTallyNoCandidates(t *testing.T) {
	svc := NewResultService(&fakeCandidateRepo{}, &fakeVoteRepo{})

	tally, err := svc.Tally(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tally)
}
