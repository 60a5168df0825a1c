package domain

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Party       string    `json:"party"`
	Description *string   `json:"description,omitempty"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
