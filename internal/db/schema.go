package db

import (
	"context"
	"fmt"
)

// schema is applied by Migrate. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS songs (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		artist      TEXT NOT NULL,
		genre       TEXT NOT NULL DEFAULT '',
		mood_tag    TEXT NOT NULL,
		youtube_url TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_songs_mood ON songs (mood_tag)`,

	`CREATE TABLE IF NOT EXISTS movies (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		genre        TEXT NOT NULL DEFAULT '',
		year         INTEGER,
		mood_tag     TEXT NOT NULL,
		ott_platform TEXT NOT NULL DEFAULT '',
		ott_url      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_mood ON movies (mood_tag)`,

	`CREATE TABLE IF NOT EXISTS mood_history (
		id                  UUID PRIMARY KEY,
		cnn_emotion         TEXT,
		cnn_confidence      DOUBLE PRECISION,
		questionnaire_mood  TEXT,
		questionnaire_score DOUBLE PRECISION,
		final_mood          TEXT NOT NULL,
		final_scores        JSONB NOT NULL,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_history_created ON mood_history (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS analysis_sessions (
		id         TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_sessions_expires ON analysis_sessions (expires_at)`,
}

// Migrate creates the tables the service needs.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
