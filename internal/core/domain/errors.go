package domain

import "errors"

var (
	ErrAlreadyVoted      = errors.New("voter has already cast a vote")
	ErrVoteInFlight      = errors.New("a vote submission is already in progress")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInvalidInput      = errors.New("invalid input")
)
