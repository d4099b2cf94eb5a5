// Package recommend turns a fused mood into songs and movies and records the
// analysis in the mood history.
package recommend

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/justestif/go-mood-recommender/internal/catalog"
	"github.com/justestif/go-mood-recommender/internal/insights"
	"github.com/justestif/go-mood-recommender/internal/logging"
	"github.com/justestif/go-mood-recommender/internal/metrics"
	"github.com/justestif/go-mood-recommender/internal/mood"
)

// Default recommendation counts.
const (
	DefaultSongs  = 5
	DefaultMovies = 5
)

// maxConcurrentLookups bounds parallel link resolver calls per request.
const maxConcurrentLookups = 4

// LinkResolver finds an alternative streaming link for a song.
// An empty string with a nil error means no match.
type LinkResolver interface {
	TrackURL(ctx context.Context, title, artist string) (string, error)
}

// Request describes one completed analysis.
type Request struct {
	Fusion mood.FusionResult

	// Face signal, empty when the image step was skipped or found no face.
	CNNEmotion    string
	CNNConfidence *float64

	// Questionnaire signal, empty when skipped.
	QuestionnaireMood  mood.Category
	QuestionnaireScore *float64

	// Zero means the engine default.
	Songs  int
	Movies int
}

// Recommendations is the engine output for one request.
type Recommendations struct {
	Mood      mood.Category   `json:"mood"`
	Emoji     string          `json:"emoji"`
	Songs     []catalog.Song  `json:"songs"`
	Movies    []catalog.Movie `json:"movies"`
	HistoryID string          `json:"history_id,omitempty"`
}

// Config holds engine defaults.
type Config struct {
	Songs  int
	Movies int
}

// Engine serves recommendations from a catalog.
type Engine struct {
	store    catalog.Store
	history  insights.History
	resolver LinkResolver
	cfg      Config
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolver enables song link enrichment.
func WithResolver(r LinkResolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithHistory enables mood history logging.
func WithHistory(h insights.History) Option {
	return func(e *Engine) { e.history = h }
}

// WithClock overrides time.Now for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine.
func New(store catalog.Store, cfg Config, opts ...Option) *Engine {
	if cfg.Songs <= 0 {
		cfg.Songs = DefaultSongs
	}
	if cfg.Movies <= 0 {
		cfg.Movies = DefaultMovies
	}
	e := &Engine{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend fetches songs and movies for the fused mood, enriches song links
// and logs the analysis. Resolver and history failures are logged and do not
// fail the call.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Recommendations, error) {
	m := req.Fusion.Mood
	if !m.Valid() {
		return nil, fmt.Errorf("recommending for %q: %w", m, mood.ErrUnknownCategory)
	}

	songLimit := req.Songs
	if songLimit <= 0 {
		songLimit = e.cfg.Songs
	}
	movieLimit := req.Movies
	if movieLimit <= 0 {
		movieLimit = e.cfg.Movies
	}

	songs, err := e.store.SongsByMood(ctx, m, songLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching songs: %w", err)
	}
	movies, err := e.store.MoviesByMood(ctx, m, movieLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching movies: %w", err)
	}

	if e.resolver != nil {
		e.resolveLinks(ctx, songs)
	}

	recs := &Recommendations{
		Mood:   m,
		Emoji:  m.Emoji(),
		Songs:  songs,
		Movies: movies,
	}

	if e.history != nil {
		entry := &insights.Entry{
			CNNEmotion:         req.CNNEmotion,
			CNNConfidence:      req.CNNConfidence,
			QuestionnaireMood:  req.QuestionnaireMood,
			QuestionnaireScore: req.QuestionnaireScore,
			FinalMood:          m,
			FinalScores:        req.Fusion.Scores,
		}
		entry.Prepare(e.now())
		if err := e.history.Log(ctx, entry); err != nil {
			metrics.HistoryWriteErrors.Inc()
			logging.Warn().Err(err).Str("mood", string(m)).Msg("Failed to log mood history")
		} else {
			recs.HistoryID = entry.ID.String()
		}
	}

	metrics.RecommendationsServed.WithLabelValues(string(m)).Inc()
	return recs, nil
}

// resolveLinks fills SpotifyURL in place. Lookups run concurrently; each
// goroutine writes only its own slice element.
func (e *Engine) resolveLinks(ctx context.Context, songs []catalog.Song) {
	var g errgroup.Group
	g.SetLimit(maxConcurrentLookups)

	for i := range songs {
		g.Go(func() error {
			s := &songs[i]
			url, err := e.resolver.TrackURL(ctx, s.Title, s.Artist)
			if err != nil {
				logging.Debug().Err(err).Str("title", s.Title).Msg("Link lookup failed")
				return nil
			}
			s.SpotifyURL = url
			return nil
		})
	}
	_ = g.Wait()
}
