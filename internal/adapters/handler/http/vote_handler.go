package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/google/uuid"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type castVoteRequest struct {
	CandidateID uuid.UUID `json:"candidate_id"`
}

// Cast godoc
// @Summary      Casts the authenticated voter's single vote
// @Description  Records one vote for the chosen candidate. A voter may vote at most once; a second attempt yields 409.
// @Tags         votes
// @Accept       json
// @Success      201
// @Failure      409
// @Router       /votes [post]
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.CandidateID == uuid.Nil {
		http.Error(w, "missing candidate id", http.StatusBadRequest)
		return
	}

	voterID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	vote, err := h.service.Cast(r.Context(), voterID, req.CandidateID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) || errors.Is(err, domain.ErrVoteInFlight) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrCandidateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		slog.Error("failed to cast vote", "error", err, "voter_id", voterID)
		http.Error(w, "failed to cast vote", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(vote); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	votes, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("failed to list votes", "error", err)
		http.Error(w, "failed to list votes", http.StatusInternalServerError)
		return
	}

	if votes == nil {
		votes = []domain.Vote{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(votes); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
