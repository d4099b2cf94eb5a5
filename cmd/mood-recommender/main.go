// Command mood-recommender runs the mood analysis and recommendation service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/justestif/go-mood-recommender/internal/catalog"
	"github.com/justestif/go-mood-recommender/internal/config"
	"github.com/justestif/go-mood-recommender/internal/db"
	"github.com/justestif/go-mood-recommender/internal/emotion"
	"github.com/justestif/go-mood-recommender/internal/insights"
	"github.com/justestif/go-mood-recommender/internal/logging"
	"github.com/justestif/go-mood-recommender/internal/questionnaire"
	"github.com/justestif/go-mood-recommender/internal/recommend"
	"github.com/justestif/go-mood-recommender/internal/spotify"
	"github.com/justestif/go-mood-recommender/internal/web"
	webfs "github.com/justestif/go-mood-recommender/web"
)

const sessionSweepInterval = 15 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tree, err := loadTree(cfg.Questionnaire.Path)
	if err != nil {
		return err
	}
	logging.Info().Int("questions", tree.Len()).Msg("Question tree loaded")

	var (
		store    catalog.Store
		history  insights.History
		sessions web.SessionManager
		health   func(context.Context) error
	)

	if cfg.Database.URL != "" {
		database, err := db.New(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		if cfg.Database.Seed {
			seeded, err := database.Catalog().Seed(ctx, catalog.SeedSongs(), catalog.SeedMovies())
			if err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}
			if seeded {
				logging.Info().Msg("Seeded catalog")
			}
		}

		store = database.Catalog()
		history = database.History()
		health = database.Ping
		if cfg.Sessions.Store == config.StorePostgres {
			sessions = web.NewDBSessionStore(database.Sessions(), cfg.Sessions.TTL)
			go sweepSessions(ctx, database.Sessions())
		}
		logging.Info().Msg("Using PostgreSQL storage")
	} else {
		store = catalog.NewSeededMemoryStore()
		history = insights.NewMemoryHistory(cfg.Insights.HistoryLimit)
		logging.Info().Msg("Using in-memory storage")
	}

	switch cfg.Sessions.Store {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Sessions.RedisAddr,
			Password: cfg.Sessions.RedisPassword,
			DB:       cfg.Sessions.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		sessions = web.NewRedisSessionStore(rdb, cfg.Sessions.TTL)
		logging.Info().Str("addr", cfg.Sessions.RedisAddr).Msg("Using Redis sessions")
	case config.StoreMemory:
		sessions = web.NewMemorySessionStore(cfg.Sessions.TTL)
	}

	var classifier emotion.Classifier
	if cfg.Classifier.URL != "" {
		classifier = emotion.NewHTTPClassifier(emotion.HTTPConfig{
			BaseURL:          cfg.Classifier.URL,
			Timeout:          cfg.Classifier.Timeout,
			FailureThreshold: cfg.Classifier.FailureThreshold,
			OpenTimeout:      cfg.Classifier.OpenTimeout,
		})
		logging.Info().Str("url", cfg.Classifier.URL).Msg("Using emotion classifier service")
	} else {
		classifier = emotion.NeutralStub()
		logging.Warn().Msg("No classifier URL configured, using neutral stub")
	}

	opts := []recommend.Option{recommend.WithHistory(history)}
	if cfg.Spotify.Enabled() {
		client, err := spotify.NewClientCredentials(ctx, cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.Market)
		if err != nil {
			logging.Warn().Err(err).Msg("Spotify unavailable, song links disabled")
		} else {
			opts = append(opts, recommend.WithResolver(client))
			logging.Info().Msg("Spotify link enrichment enabled")
		}
	}
	engine := recommend.New(store, recommend.Config{
		Songs:  cfg.Recommendations.Songs,
		Movies: cfg.Recommendations.Movies,
	}, opts...)

	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		RateLimit:       cfg.Server.RateLimit,
		CORSOrigins:     cfg.Server.CORSOrigins,
		TemplatesFS:     templates,
		StaticFS:        static,
	}, web.Deps{
		Tree:     tree,
		Analyzer: emotion.NewService(classifier),
		Engine:   engine,
		History:  history,
		Sessions: sessions,
		Weights:  cfg.Fusion,
		PatternConfig: insights.PatternConfig{
			MaxPatterns:    cfg.Insights.MaxPatterns,
			MinClusterSize: cfg.Insights.MinClusterSize,
		},
		HistoryLimit:   cfg.Insights.HistoryLimit,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		SessionTTL:     cfg.Sessions.TTL,
		CookieSecure:   cfg.Sessions.CookieSecure,
		Health:         health,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run(ctx)
}

func loadTree(path string) (*questionnaire.Tree, error) {
	if path == "" {
		tree, err := questionnaire.Default()
		if err != nil {
			return nil, fmt.Errorf("loading built-in questions: %w", err)
		}
		return tree, nil
	}
	tree, err := questionnaire.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading questions from %s: %w", path, err)
	}
	return tree, nil
}

// sweepSessions deletes expired database sessions until ctx is done.
func sweepSessions(ctx context.Context, repo *db.SessionRepository) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logging.Warn().Err(err).Msg("Failed to delete expired sessions")
				continue
			}
			if n > 0 {
				logging.Debug().Int64("deleted", n).Msg("Deleted expired sessions")
			}
		}
	}
}
