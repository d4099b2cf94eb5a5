package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, "127.0.0.1:8080")
	}
	if cfg.Fusion.CNN != 0.6 || cfg.Fusion.Questionnaire != 0.4 {
		t.Errorf("Fusion = %+v, want 0.6/0.4", cfg.Fusion)
	}
	if cfg.Sessions.Store != StoreMemory {
		t.Errorf("Sessions.Store = %q, want %q", cfg.Sessions.Store, StoreMemory)
	}
	if cfg.Recommendations.Songs != 5 {
		t.Errorf("Recommendations.Songs = %d, want 5", cfg.Recommendations.Songs)
	}
	if cfg.Spotify.Enabled() {
		t.Error("Spotify.Enabled() = true without credentials")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mood.yaml")
	yaml := `
server:
  addr: ":9000"
  read_timeout: 5s
fusion:
  cnn_weight: 0.7
  questionnaire_weight: 0.3
recommendations:
  songs: 8
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(PathEnvVar, path)
	t.Setenv("MOOD_RECOMMENDATIONS_SONGS", "3")
	t.Setenv("MOOD_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MOOD_CLASSIFIER_FAILURE_THRESHOLD", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9000")
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Fusion.CNN != 0.7 {
		t.Errorf("Fusion.CNN = %v, want 0.7", cfg.Fusion.CNN)
	}
	if cfg.Recommendations.Songs != 3 {
		t.Errorf("Recommendations.Songs = %d, want 3 (env beats file)", cfg.Recommendations.Songs)
	}
	if cfg.Classifier.FailureThreshold != 2 {
		t.Errorf("Classifier.FailureThreshold = %d, want 2", cfg.Classifier.FailureThreshold)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Server.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Server.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(PathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil for a missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(*Config) {}, valid: true},
		{name: "zero weights", mutate: func(c *Config) { c.Fusion.CNN, c.Fusion.Questionnaire = 0, 0 }},
		{name: "negative weight", mutate: func(c *Config) { c.Fusion.CNN = -1 }},
		{name: "unknown store", mutate: func(c *Config) { c.Sessions.Store = "disk" }},
		{name: "redis without addr", mutate: func(c *Config) { c.Sessions.Store = StoreRedis }},
		{
			name: "redis with addr",
			mutate: func(c *Config) {
				c.Sessions.Store = StoreRedis
				c.Sessions.RedisAddr = "localhost:6379"
			},
			valid: true,
		},
		{name: "postgres sessions without database", mutate: func(c *Config) { c.Sessions.Store = StorePostgres }},
		{name: "too many songs", mutate: func(c *Config) { c.Recommendations.Songs = 500 }},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "bad classifier url", mutate: func(c *Config) { c.Classifier.URL = "not a url" }},
		{name: "spotify secret missing", mutate: func(c *Config) { c.Spotify.ClientID = "id" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalid)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MOOD_SERVER_ADDR", "server.addr"},
		{"MOOD_SERVER_READ_TIMEOUT", "server.read_timeout"},
		{"MOOD_FUSION_CNN_WEIGHT", "fusion.cnn_weight"},
		{"MOOD_DEBUG", "debug"},
	}

	for _, tt := range tests {
		if got := envKey(tt.input); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
