package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/election/api/internal/adapters/handler/http"
	"github.com/election/api/internal/adapters/oauth/google"
	"github.com/election/api/internal/adapters/repository/postgres"
	"github.com/election/api/internal/config"
	"github.com/election/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	candidateRepo := postgres.NewCandidateRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	candidateSvc := services.NewCandidateService(candidateRepo)
	voteSvc := services.NewVoteService(voteRepo)
	resultSvc := services.NewResultService(candidateRepo, voteRepo)
	voterSvc := services.NewVoterService(profileRepo, voteRepo)
	authSvc := services.NewAuthService(profileRepo, authRepo, google.NewVerifier(), []byte(cfg.JWTSecret), cfg.GoogleClientID)

	handler := http.NewHandler(http.RouterConfig{
		CandidateHandler: http.NewCandidateHandler(candidateSvc),
		VoteHandler:      http.NewVoteHandler(voteSvc),
		ResultHandler:    http.NewResultHandler(resultSvc),
		VoterHandler:     http.NewVoterHandler(voterSvc),
		AuthHandler:      http.NewAuthHandler(authSvc, cfg.RedirectURL, cfg.CookieDomain, stdhttp.SameSiteLaxMode),
		JWTSecret:        []byte(cfg.JWTSecret),
	})

	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
