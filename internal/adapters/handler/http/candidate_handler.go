package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		service: service,
	}
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		http.Error(w, "failed to list candidates", http.StatusInternalServerError)
		return
	}

	if candidates == nil {
		candidates = []domain.Candidate{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(candidates); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

type createCandidateRequest struct {
	Name        string `json:"name"`
	Party       string `json:"party"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreateCandidateInput{
		Name:        req.Name,
		Party:       req.Party,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	}

	candidate, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to create candidate", "error", err)
		http.Error(w, "failed to create candidate", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(candidate); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		slog.Error("failed to delete candidate", "error", err, "candidate_id", id)
		http.Error(w, "failed to delete candidate", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
