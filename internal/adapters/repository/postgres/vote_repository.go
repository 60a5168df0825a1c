package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/election/api/internal/core/domain"
	"github.com/election/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, voter_id, candidate_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, vote.ID, vote.VoterID, vote.CandidateID).Scan(&vote.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCandidateNotFound
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) List(ctx context.Context) ([]domain.Vote, error) {
	query := `
		SELECT id, voter_id, candidate_id, created_at
		FROM votes
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.VoterID, &v.CandidateID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, voterID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM votes WHERE voter_id = $1 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, voterID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
