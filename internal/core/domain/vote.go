package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	ID          uuid.UUID `json:"id"`
	VoterID     uuid.UUID `json:"voter_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}
