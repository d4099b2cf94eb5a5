// Package catalog holds the songs and movies recommended for each mood.
package catalog

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/justestif/go-mood-recommender/internal/mood"
)

// Song is a recommended track.
type Song struct {
	ID     int64         `json:"id"`
	Title  string        `json:"title"`
	Artist string        `json:"artist"`
	Genre  string        `json:"genre"`
	Mood   mood.Category `json:"mood_tag"`
	// URL is a public video link.
	URL string `json:"youtube_url"`
	// SpotifyURL is filled in when a link resolver is configured.
	SpotifyURL string `json:"spotify_url,omitempty"`
}

// Movie is a recommended film and where to stream it.
type Movie struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Genre    string        `json:"genre"`
	Year     int           `json:"year"`
	Mood     mood.Category `json:"mood_tag"`
	Platform string        `json:"ott_platform"`
	URL      string        `json:"ott_url"`
}

// Store returns up to limit randomly ordered items tagged with a mood.
type Store interface {
	SongsByMood(ctx context.Context, m mood.Category, limit int) ([]Song, error)
	MoviesByMood(ctx context.Context, m mood.Category, limit int) ([]Movie, error)
}

// SeedSongs returns a copy of the built-in song list.
func SeedSongs() []Song {
	return append([]Song(nil), seedSongs...)
}

// SeedMovies returns a copy of the built-in movie list.
func SeedMovies() []Movie {
	return append([]Movie(nil), seedMovies...)
}

// MemoryStore serves the catalog from memory.
type MemoryStore struct {
	songs  map[mood.Category][]Song
	movies map[mood.Category][]Movie

	mu   sync.Mutex
	rand *rand.Rand
}

// NewMemoryStore indexes the given items by mood and numbers them from 1.
// The random source picks the order of results; nil seeds one from the
// runtime.
func NewMemoryStore(songs []Song, movies []Movie, src rand.Source) *MemoryStore {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	s := &MemoryStore{
		songs:  make(map[mood.Category][]Song),
		movies: make(map[mood.Category][]Movie),
		rand:   rand.New(src),
	}
	for i, song := range songs {
		if song.ID == 0 {
			song.ID = int64(i + 1)
		}
		s.songs[song.Mood] = append(s.songs[song.Mood], song)
	}
	for i, movie := range movies {
		if movie.ID == 0 {
			movie.ID = int64(i + 1)
		}
		s.movies[movie.Mood] = append(s.movies[movie.Mood], movie)
	}
	return s
}

// NewSeededMemoryStore returns a MemoryStore holding the built-in catalog.
func NewSeededMemoryStore() *MemoryStore {
	return NewMemoryStore(seedSongs, seedMovies, nil)
}

func (s *MemoryStore) SongsByMood(ctx context.Context, m mood.Category, limit int) ([]Song, error) {
	return pick(s, s.songs[m], limit), nil
}

func (s *MemoryStore) MoviesByMood(ctx context.Context, m mood.Category, limit int) ([]Movie, error) {
	return pick(s, s.movies[m], limit), nil
}

// pick returns up to limit items from a shuffled copy of items.
func pick[T any](s *MemoryStore, items []T, limit int) []T {
	if limit <= 0 || len(items) == 0 {
		return []T{}
	}
	out := append([]T(nil), items...)

	s.mu.Lock()
	s.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	s.mu.Unlock()

	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
