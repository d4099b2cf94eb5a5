// Package config loads service configuration from defaults, an optional
// YAML file and MOOD_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/justestif/go-mood-recommender/internal/mood"
	"github.com/justestif/go-mood-recommender/internal/validation"
)

const (
	// EnvPrefix is stripped from environment variables before mapping.
	EnvPrefix = "MOOD_"

	// PathEnvVar names an explicit config file.
	PathEnvVar = "CONFIG_PATH"

	// DefaultPath is read when present and CONFIG_PATH is unset.
	DefaultPath = "config.yaml"
)

// Session store kinds.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full service configuration.
type Config struct {
	Server          ServerConfig          `koanf:"server"`
	Logging         LoggingConfig         `koanf:"logging"`
	Fusion          mood.Weights          `koanf:"fusion"`
	Questionnaire   QuestionnaireConfig   `koanf:"questionnaire"`
	Classifier      ClassifierConfig      `koanf:"classifier"`
	Database        DatabaseConfig        `koanf:"database"`
	Sessions        SessionsConfig        `koanf:"sessions"`
	Recommendations RecommendationsConfig `koanf:"recommendations"`
	Spotify         SpotifyConfig         `koanf:"spotify"`
	Insights        InsightsConfig        `koanf:"insights"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	// RateLimit is requests per minute per client IP on /api; 0 disables it.
	RateLimit   int      `koanf:"rate_limit" validate:"gte=0"`
	CORSOrigins []string `koanf:"cors_origins"`
	// MaxUploadBytes caps image uploads.
	MaxUploadBytes int64 `koanf:"max_upload_bytes" validate:"gt=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

type QuestionnaireConfig struct {
	// Path to a YAML question tree. Empty uses the built-in tree.
	Path string `koanf:"path"`
}

type ClassifierConfig struct {
	// URL of the inference service. Empty runs the offline stub.
	URL              string        `koanf:"url" validate:"omitempty,http_url"`
	Timeout          time.Duration `koanf:"timeout" validate:"gt=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"gte=1"`
	OpenTimeout      time.Duration `koanf:"open_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	// URL is a Postgres connection string. Empty keeps everything in memory.
	URL  string `koanf:"url"`
	Seed bool   `koanf:"seed"`
}

type SessionsConfig struct {
	Store         string        `koanf:"store" validate:"oneof=memory postgres redis"`
	TTL           time.Duration `koanf:"ttl" validate:"gt=0"`
	CookieSecure  bool          `koanf:"cookie_secure"`
	RedisAddr     string        `koanf:"redis_addr" validate:"required_if=Store redis"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db" validate:"gte=0"`
}

type RecommendationsConfig struct {
	Songs  int `koanf:"songs" validate:"gte=1,lte=50"`
	Movies int `koanf:"movies" validate:"gte=1,lte=50"`
}

type SpotifyConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret" validate:"required_with=ClientID"`
	Market       string `koanf:"market" validate:"omitempty,len=2"`
}

// Enabled reports whether Spotify credentials were supplied.
func (c SpotifyConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type InsightsConfig struct {
	HistoryLimit   int `koanf:"history_limit" validate:"gte=1,lte=10000"`
	MaxPatterns    int `koanf:"max_patterns" validate:"gte=1,lte=20"`
	MinClusterSize int `koanf:"min_cluster_size" validate:"gte=1"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       120,
			MaxUploadBytes:  10 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Fusion: mood.DefaultWeights(),
		Classifier: ClassifierConfig{
			Timeout:          10 * time.Second,
			FailureThreshold: 5,
			OpenTimeout:      30 * time.Second,
		},
		Database: DatabaseConfig{
			Seed: true,
		},
		Sessions: SessionsConfig{
			Store: StoreMemory,
			TTL:   24 * time.Hour,
		},
		Recommendations: RecommendationsConfig{
			Songs:  5,
			Movies: 5,
		},
		Insights: InsightsConfig{
			HistoryLimit:   500,
			MaxPatterns:    4,
			MinClusterSize: 3,
		},
	}
}

// Load builds the configuration from defaults, the config file and the
// environment, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := splitList(k, "server.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Fusion.Validate(); err != nil {
		return fmt.Errorf("%w: fusion: %v", ErrInvalid, err)
	}
	if c.Sessions.Store == StorePostgres && c.Database.URL == "" {
		return fmt.Errorf("%w: sessions.store=postgres needs database.url", ErrInvalid)
	}
	return nil
}

func configPath() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	return ""
}

// envKey maps MOOD_SERVER_READ_TIMEOUT to server.read_timeout: the first
// segment after the prefix names the section, the rest is the field.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + field
}

// splitList turns a comma-separated string from the environment into a
// list. Values from YAML are already lists and are left alone.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	return nil
}
