package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/election/api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVoteRepo struct {
	mu       sync.Mutex
	votes    []domain.Vote
	hasVoted bool

	hasVotedErr error
	saveErr     error
	listErr     error

	saveCalls int

	// saveStarted/saveRelease let a test hold a save mid-flight.
	saveStarted chan struct{}
	saveRelease chan struct{}
}

func (f *fakeVoteRepo) SaveVote(ctx context.Context, vote *domain.Vote) error {
	if f.saveStarted != nil {
		close(f.saveStarted)
		<-f.saveRelease
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.votes = append(f.votes, *vote)
	return nil
}

func (f *fakeVoteRepo) List(ctx context.Context) ([]domain.Vote, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Vote(nil), f.votes...), nil
}

func (f *fakeVoteRepo) HasVoted(ctx context.Context, voterID uuid.UUID) (bool, error) {
	if f.hasVotedErr != nil {
		return false, f.hasVotedErr
	}
	return f.hasVoted, nil
}

func TestCastSuccess(t *testing.T) {
	repo := &fakeVoteRepo{}
	svc := NewVoteService(repo)

	voterID := uuid.New()
	candidateID := uuid.New()

	vote, err := svc.Cast(context.Background(), voterID, candidateID)

	require.NoError(t, err)
	assert.Equal(t, voterID, vote.VoterID)
	assert.Equal(t, candidateID, vote.CandidateID)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestCastRejectsWhenAlreadyVoted(t *testing.T) {
	repo := &fakeVoteRepo{hasVoted: true}
	svc := NewVoteService(repo)

	_, err := svc.Cast(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, domain.ErrAlreadyVoted)
	assert.Zero(t, repo.saveCalls, "no write should be attempted after the precondition fails")
}

func TestCastReportsStoreConflictAsAlreadyVoted(t *testing.T) {
	// The precondition passed but the insert raced another submission; the
	// store's uniqueness conflict must not surface as a generic failure.
	repo := &fakeVoteRepo{saveErr: domain.ErrAlreadyVoted}
	svc := NewVoteService(repo)

	_, err := svc.Cast(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestCastPropagatesOtherFailures(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakeVoteRepo{saveErr: boom}
	svc := NewVoteService(repo)

	_, err := svc.Cast(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestCastRejectsConcurrentSubmissionForSameVoter(t *testing.T) {
	repo := &fakeVoteRepo{
		saveStarted: make(chan struct{}),
		saveRelease: make(chan struct{}),
	}
	svc := NewVoteService(repo)

	voterID := uuid.New()

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Cast(context.Background(), voterID, uuid.New())
		firstDone <- err
	}()

	<-repo.saveStarted

	_, err := svc.Cast(context.Background(), voterID, uuid.New())
	require.ErrorIs(t, err, domain.ErrVoteInFlight)

	close(repo.saveRelease)
	require.NoError(t, <-firstDone)
}

func TestCastReleasesGuardAfterFailure(t *testing.T) {
	repo := &fakeVoteRepo{hasVotedErr: errors.New("timeout")}
	svc := NewVoteService(repo)

	voterID := uuid.New()

	_, err := svc.Cast(context.Background(), voterID, uuid.New())
	require.Error(t, err)

	// The guard must be back to idle; a retry reaches the repository again
	// rather than being reported as in flight.
	repo.hasVotedErr = nil
	_, err = svc.Cast(context.Background(), voterID, uuid.New())
	require.NoError(t, err)
}

func TestCastDoesNotBlockOtherVoters(t *testing.T) {
	repo := &fakeVoteRepo{
		saveStarted: make(chan struct{}),
		saveRelease: make(chan struct{}),
	}
	svc := NewVoteService(repo)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Cast(context.Background(), uuid.New(), uuid.New())
		firstDone <- err
	}()

	<-repo.saveStarted
	repo.saveStarted = nil

	_, err := svc.Cast(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)

	close(repo.saveRelease)
	require.NoError(t, <-firstDone)
}
