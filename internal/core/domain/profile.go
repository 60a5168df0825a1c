package domain

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  *string    `json:"full_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// VoterStatus is a profile enriched with its derived participation flag.
// The flag is never stored; it is recomputed from the vote records on demand.
type VoterStatus struct {
	Profile
	HasVoted bool `json:"has_voted"`
}

// MarkParticipation labels each profile with whether some vote references it
// as voter. Profile order is preserved.
func MarkParticipation(profiles []Profile, votes []Vote) []VoterStatus {
	voted := make(map[uuid.UUID]struct{}, len(votes))
	for _, v := range votes {
		voted[v.VoterID] = struct{}{}
	}

	statuses := make([]VoterStatus, 0, len(profiles))
	for _, p := range profiles {
		_, ok := voted[p.ID]
		statuses = append(statuses, VoterStatus{Profile: p, HasVoted: ok})
	}
	return statuses
}

type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}
