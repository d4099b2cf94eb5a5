package recommend

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/justestif/go-mood-recommender/internal/catalog"
	"github.com/justestif/go-mood-recommender/internal/insights"
	"github.com/justestif/go-mood-recommender/internal/mood"
)

type mockResolver struct {
	mu    sync.Mutex
	urls  map[string]string
	err   error
	calls int
}

func (m *mockResolver) TrackURL(ctx context.Context, title, artist string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.urls[title], nil
}

type failingHistory struct{}

func (failingHistory) Log(ctx context.Context, e *insights.Entry) error {
	return errors.New("disk full")
}

func (failingHistory) Recent(ctx context.Context, limit int) ([]insights.Entry, error) {
	return nil, nil
}

type failingStore struct{}

func (failingStore) SongsByMood(ctx context.Context, m mood.Category, limit int) ([]catalog.Song, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) MoviesByMood(ctx context.Context, m mood.Category, limit int) ([]catalog.Movie, error) {
	return nil, nil
}

func testStore() catalog.Store {
	return catalog.NewMemoryStore(catalog.SeedSongs(), catalog.SeedMovies(), rand.NewPCG(1, 2))
}

func fused(m mood.Category) mood.FusionResult {
	return mood.Fuse(mood.AllOn(m), nil, mood.DefaultWeights())
}

func TestRecommendLimits(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		req        Request
		wantSongs  int
		wantMovies int
	}{
		{
			name:       "engine defaults",
			cfg:        Config{},
			req:        Request{Fusion: fused(mood.Happy)},
			wantSongs:  DefaultSongs,
			wantMovies: DefaultMovies,
		},
		{
			name:       "configured",
			cfg:        Config{Songs: 3, Movies: 2},
			req:        Request{Fusion: fused(mood.Sad)},
			wantSongs:  3,
			wantMovies: 2,
		},
		{
			name:       "request overrides",
			cfg:        Config{Songs: 3, Movies: 2},
			req:        Request{Fusion: fused(mood.Angry), Songs: 1, Movies: 4},
			wantSongs:  1,
			wantMovies: 4,
		},
		{
			name:       "capped by catalog",
			cfg:        Config{},
			req:        Request{Fusion: fused(mood.Stressed), Songs: 50, Movies: 50},
			wantSongs:  10,
			wantMovies: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(testStore(), tt.cfg)
			recs, err := e.Recommend(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Recommend() error: %v", err)
			}
			if len(recs.Songs) != tt.wantSongs {
				t.Errorf("len(Songs) = %d, want %d", len(recs.Songs), tt.wantSongs)
			}
			if len(recs.Movies) != tt.wantMovies {
				t.Errorf("len(Movies) = %d, want %d", len(recs.Movies), tt.wantMovies)
			}
			for _, s := range recs.Songs {
				if s.Mood != tt.req.Fusion.Mood {
					t.Errorf("song %q mood = %q, want %q", s.Title, s.Mood, tt.req.Fusion.Mood)
				}
			}
			for _, m := range recs.Movies {
				if m.Mood != tt.req.Fusion.Mood {
					t.Errorf("movie %q mood = %q, want %q", m.Title, m.Mood, tt.req.Fusion.Mood)
				}
			}
			if recs.Emoji != tt.req.Fusion.Mood.Emoji() {
				t.Errorf("Emoji = %q, want %q", recs.Emoji, tt.req.Fusion.Mood.Emoji())
			}
		})
	}
}

func TestRecommendInvalidMood(t *testing.T) {
	e := New(testStore(), Config{})
	_, err := e.Recommend(context.Background(), Request{Fusion: mood.FusionResult{Mood: "bored"}})
	if !errors.Is(err, mood.ErrUnknownCategory) {
		t.Errorf("Recommend() error = %v, want ErrUnknownCategory", err)
	}
}

func TestRecommendStoreError(t *testing.T) {
	e := New(failingStore{}, Config{})
	if _, err := e.Recommend(context.Background(), Request{Fusion: fused(mood.Happy)}); err == nil {
		t.Error("Recommend() expected error, got nil")
	}
}

func TestRecommendResolver(t *testing.T) {
	songs := []catalog.Song{
		{ID: 1, Title: "Happy", Artist: "Pharrell Williams", Mood: mood.Happy},
		{ID: 2, Title: "Unknown Song", Artist: "Nobody", Mood: mood.Happy},
	}
	store := catalog.NewMemoryStore(songs, nil, rand.NewPCG(1, 2))

	t.Run("fills matches", func(t *testing.T) {
		r := &mockResolver{urls: map[string]string{"Happy": "https://open.spotify.com/track/t1"}}
		e := New(store, Config{}, WithResolver(r))

		recs, err := e.Recommend(context.Background(), Request{Fusion: fused(mood.Happy)})
		if err != nil {
			t.Fatalf("Recommend() error: %v", err)
		}
		for _, s := range recs.Songs {
			want := r.urls[s.Title]
			if s.SpotifyURL != want {
				t.Errorf("%q SpotifyURL = %q, want %q", s.Title, s.SpotifyURL, want)
			}
		}
		if r.calls != 2 {
			t.Errorf("resolver calls = %d, want 2", r.calls)
		}
		if len(recs.Movies) != 0 {
			t.Errorf("len(Movies) = %d, want 0", len(recs.Movies))
		}
	})

	t.Run("errors ignored", func(t *testing.T) {
		r := &mockResolver{err: errors.New("rate limited")}
		e := New(store, Config{}, WithResolver(r))

		recs, err := e.Recommend(context.Background(), Request{Fusion: fused(mood.Happy)})
		if err != nil {
			t.Fatalf("Recommend() error: %v", err)
		}
		for _, s := range recs.Songs {
			if s.SpotifyURL != "" {
				t.Errorf("%q SpotifyURL = %q, want empty", s.Title, s.SpotifyURL)
			}
		}
	})
}

func TestRecommendHistory(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	conf := 0.82
	score := 0.45

	t.Run("logs entry", func(t *testing.T) {
		h := insights.NewMemoryHistory(10)
		e := New(testStore(), Config{}, WithHistory(h), WithClock(func() time.Time { return now }))

		req := Request{
			Fusion:             mood.Fuse(mood.AllOn(mood.Happy), mood.AllOn(mood.Sad), mood.DefaultWeights()),
			CNNEmotion:         "happy",
			CNNConfidence:      &conf,
			QuestionnaireMood:  mood.Sad,
			QuestionnaireScore: &score,
		}
		recs, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend() error: %v", err)
		}

		entries, _ := h.Recent(context.Background(), 0)
		if len(entries) != 1 {
			t.Fatalf("len(entries) = %d, want 1", len(entries))
		}
		got := entries[0]
		if got.ID.String() != recs.HistoryID {
			t.Errorf("entry ID = %s, want %s", got.ID, recs.HistoryID)
		}
		if got.FinalMood != mood.Happy {
			t.Errorf("FinalMood = %q, want happy", got.FinalMood)
		}
		if got.CNNEmotion != "happy" || *got.CNNConfidence != conf {
			t.Errorf("CNN = %q/%v, want happy/%v", got.CNNEmotion, *got.CNNConfidence, conf)
		}
		if got.QuestionnaireMood != mood.Sad || *got.QuestionnaireScore != score {
			t.Errorf("questionnaire = %q/%v, want sad/%v", got.QuestionnaireMood, *got.QuestionnaireScore, score)
		}
		if !got.CreatedAt.Equal(now) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, now)
		}
	})

	t.Run("write failure does not fail request", func(t *testing.T) {
		e := New(testStore(), Config{}, WithHistory(failingHistory{}))
		recs, err := e.Recommend(context.Background(), Request{Fusion: fused(mood.Neutral)})
		if err != nil {
			t.Fatalf("Recommend() error: %v", err)
		}
		if recs.HistoryID != "" {
			t.Errorf("HistoryID = %q, want empty", recs.HistoryID)
		}
		if len(recs.Songs) == 0 {
			t.Error("expected songs despite history failure")
		}
	})
}
