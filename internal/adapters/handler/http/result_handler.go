package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{
		service: service,
	}
}

func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	tally, err := h.service.Tally(r.Context())
	if err != nil {
		slog.Error("failed to compute tally", "error", err)
		http.Error(w, "failed to compute tally", http.StatusInternalServerError)
		return
	}

	if tally == nil {
		tally = []domain.TallyEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tally); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
