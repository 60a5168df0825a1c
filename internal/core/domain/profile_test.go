package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkParticipation(t *testing.T) {
	voted := Profile{ID: uuid.New(), Email: "u1@example.com"}
	abstained := Profile{ID: uuid.New(), Email: "u2@example.com"}

	votes := []Vote{
		{ID: uuid.New(), VoterID: voted.ID, CandidateID: uuid.New()},
	}

	statuses := MarkParticipation([]Profile{voted, abstained}, votes)

	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].HasVoted)
	assert.False(t, statuses[1].HasVoted)
}

func TestMarkParticipationPreservesOrder(t *testing.T) {
	profiles := []Profile{
		{ID: uuid.New(), Email: "newest@example.com"},
		{ID: uuid.New(), Email: "middle@example.com"},
		{ID: uuid.New(), Email: "oldest@example.com"},
	}

	statuses := MarkParticipation(profiles, nil)

	require.Len(t, statuses, 3)
	for i, p := range profiles {
		assert.Equal(t, p.Email, statuses[i].Email)
		assert.False(t, statuses[i].HasVoted)
	}
}

func TestMarkParticipationNoVotes(t *testing.T) {
	statuses := MarkParticipation([]Profile{{ID: uuid.New()}}, []Vote{})
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].HasVoted)
}
