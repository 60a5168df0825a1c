package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ports.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT id, email, name, created_at FROM users WHERE email = $1 AND deleted_at IS NULL`
	profile := &domain.Profile{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, email, name, created_at FROM users WHERE id = $1 AND deleted_at IS NULL`
	profile := &domain.Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO users (email, name) VALUES ($1, $2) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, profile.Email, profile.FullName).Scan(&profile.ID, &profile.CreatedAt)
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	query := `
		SELECT id, email, name, created_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}
