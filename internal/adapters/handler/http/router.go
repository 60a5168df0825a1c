package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	CandidateHandler *CandidateHandler
	VoteHandler      *VoteHandler
	ResultHandler    *ResultHandler
	VoterHandler     *VoterHandler
	AuthHandler      *AuthHandler
	JWTSecret        []byte
}

func NewHandler(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.AuthHandler != nil {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/google/callback", cfg.AuthHandler.GoogleCallback)
			r.Post("/refresh", cfg.AuthHandler.Refresh)
			r.Post("/logout", cfg.AuthHandler.Logout)
		})
	}

	r.Route("/api", func(r chi.Router) {
		// Public: the candidate roster and the live tally.
		r.Get("/candidates", cfg.CandidateHandler.List)
		r.Get("/results", cfg.ResultHandler.Get)

		// Authenticated voter surface.
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(cfg.JWTSecret))

			r.Post("/votes", cfg.VoteHandler.Cast)
			r.Get("/me", cfg.VoterHandler.Me)

			// Admin surface. No separate role exists; any authenticated
			// user reaching these routes is treated as admin.
			r.Route("/admin", func(r chi.Router) {
				r.Post("/candidates", cfg.CandidateHandler.Create)
				r.Delete("/candidates/{id}", cfg.CandidateHandler.Delete)
				r.Get("/votes", cfg.VoteHandler.List)
				r.Get("/voters", cfg.VoterHandler.List)
			})
		})
	})

	return r
}
