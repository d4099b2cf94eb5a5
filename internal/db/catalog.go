package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/justestif/go-mood-recommender/internal/catalog"
	"github.com/justestif/go-mood-recommender/internal/mood"
)

// CatalogRepository serves songs and movies from Postgres.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// SongsByMood returns up to limit random songs tagged with m.
func (r *CatalogRepository) SongsByMood(ctx context.Context, m mood.Category, limit int) ([]catalog.Song, error) {
	if limit <= 0 {
		return []catalog.Song{}, nil
	}
	query := `
		SELECT id, title, artist, genre, mood_tag, youtube_url
		FROM songs
		WHERE mood_tag = $1
		ORDER BY RANDOM()
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, string(m), limit)
	if err != nil {
		return nil, fmt.Errorf("querying songs: %w", err)
	}
	defer rows.Close()

	songs := []catalog.Song{}
	for rows.Next() {
		var s catalog.Song
		var tag string
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Genre, &tag, &s.URL); err != nil {
			return nil, fmt.Errorf("scanning song: %w", err)
		}
		s.Mood = mood.Category(tag)
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating songs: %w", err)
	}
	return songs, nil
}

// MoviesByMood returns up to limit random movies tagged with m.
func (r *CatalogRepository) MoviesByMood(ctx context.Context, m mood.Category, limit int) ([]catalog.Movie, error) {
	if limit <= 0 {
		return []catalog.Movie{}, nil
	}
	query := `
		SELECT id, title, genre, COALESCE(year, 0), mood_tag, ott_platform, ott_url
		FROM movies
		WHERE mood_tag = $1
		ORDER BY RANDOM()
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, string(m), limit)
	if err != nil {
		return nil, fmt.Errorf("querying movies: %w", err)
	}
	defer rows.Close()

	movies := []catalog.Movie{}
	for rows.Next() {
		var mv catalog.Movie
		var tag string
		if err := rows.Scan(&mv.ID, &mv.Title, &mv.Genre, &mv.Year, &tag, &mv.Platform, &mv.URL); err != nil {
			return nil, fmt.Errorf("scanning movie: %w", err)
		}
		mv.Mood = mood.Category(tag)
		movies = append(movies, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movies: %w", err)
	}
	return movies, nil
}

// Seed loads the given catalog when the songs table is empty. It reports
// whether anything was inserted.
func (r *CatalogRepository) Seed(ctx context.Context, songs []catalog.Song, movies []catalog.Movie) (bool, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM songs`).Scan(&count); err != nil {
		return false, fmt.Errorf("counting songs: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"songs"},
		[]string{"title", "artist", "genre", "mood_tag", "youtube_url"},
		pgx.CopyFromSlice(len(songs), func(i int) ([]any, error) {
			s := songs[i]
			return []any{s.Title, s.Artist, s.Genre, string(s.Mood), s.URL}, nil
		}),
	)
	if err != nil {
		return false, fmt.Errorf("copying songs: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"movies"},
		[]string{"title", "genre", "year", "mood_tag", "ott_platform", "ott_url"},
		pgx.CopyFromSlice(len(movies), func(i int) ([]any, error) {
			m := movies[i]
			return []any{m.Title, m.Genre, int32(m.Year), string(m.Mood), m.Platform, m.URL}, nil
		}),
	)
	if err != nil {
		return false, fmt.Errorf("copying movies: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing seed: %w", err)
	}
	return true, nil
}

var _ catalog.Store = (*CatalogRepository)(nil)
