package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/election/api/internal/adapters/repository/postgres"
	"github.com/election/api/internal/config"
	"github.com/election/api/internal/core/ports"
	"github.com/election/api/internal/core/services"
)

type seedCandidate struct {
	Name        string `json:"name"`
	Party       string `json:"party"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

// Loads candidates from a JSON file into the database. Useful for setting up
// a fresh election.
func main() {
	var file string
	flag.StringVar(&file, "file", "candidates.json", "Path to a JSON array of candidates")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		log.Fatal(err)
	}

	var candidates []seedCandidate
	if err := json.Unmarshal(content, &candidates); err != nil {
		log.Fatalf("Failed to parse %s: %v", file, err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	svc := services.NewCandidateService(postgres.NewCandidateRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, c := range candidates {
		created, err := svc.Create(ctx, ports.CreateCandidateInput{
			Name:        c.Name,
			Party:       c.Party,
			Description: c.Description,
			PhotoURL:    c.PhotoURL,
		})
		if err != nil {
			log.Fatalf("Failed to insert candidate %q: %v", c.Name, err)
		}
		log.Printf("Inserted candidate %s (%s)", created.Name, created.ID)
	}
}
