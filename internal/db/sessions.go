package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository stores analysis session payloads as JSON.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// Save creates or replaces a session.
func (r *SessionRepository) Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error {
	query := `
		INSERT INTO analysis_sessions (id, data, updated_at, expires_at)
		VALUES ($1, $2, NOW(), $3)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW(),
			expires_at = EXCLUDED.expires_at
	`
	if _, err := r.pool.Exec(ctx, query, id, data, expiresAt); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Get returns the payload of an unexpired session.
func (r *SessionRepository) Get(ctx context.Context, id string) ([]byte, error) {
	query := `
		SELECT data
		FROM analysis_sessions
		WHERE id = $1 AND expires_at > NOW()
	`
	var data []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return data, nil
}

// Delete removes a session by ID.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM analysis_sessions WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM analysis_sessions WHERE expires_at <= NOW()`
	result, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("deleting expired sessions: %w", err)
	}
	return result.RowsAffected(), nil
}
