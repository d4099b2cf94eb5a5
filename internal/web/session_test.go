package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/justestif/go-mood-recommender/internal/db"
	"github.com/justestif/go-mood-recommender/internal/mood"
)

// mockRepo implements SessionRepository in memory.
type mockRepo struct {
	mu   sync.Mutex
	rows map[string][]byte
	exp  map[string]time.Time
}

func newMockRepo() *mockRepo {
	return &mockRepo{rows: make(map[string][]byte), exp: make(map[string]time.Time)}
}

func (m *mockRepo) Save(_ context.Context, id string, data []byte, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[id] = data
	m.exp[id] = expiresAt
	return nil
}

func (m *mockRepo) Get(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.rows[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return data, nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

// mockRedis implements RedisClient in memory.
type mockRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newMockRedis() *mockRedis {
	return &mockRedis{data: make(map[string]string), ttl: make(map[string]time.Duration)}
}

func (m *mockRedis) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.data[key] = string(value.([]byte))
	m.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *mockRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func testSession() *AnalysisSession {
	s := newSession()
	s.CNN = &CNNResult{
		Emotion:    "happy",
		Mood:       mood.Happy,
		Confidence: 0.8,
		Scores:     mood.Distribution{mood.Happy: 0.8, mood.Neutral: 0.2},
	}
	s.Questionnaire = &QuestionnaireResult{
		TopMood: mood.Sad,
		Score:   0.5,
		Scores:  mood.Distribution{mood.Sad: 0.5, mood.Stressed: 0.5},
	}
	return s
}

func TestSessionManagers(t *testing.T) {
	stores := []struct {
		name  string
		store SessionManager
	}{
		{"memory", NewMemorySessionStore(time.Hour)},
		{"db", NewDBSessionStore(newMockRepo(), time.Hour)},
		{"redis", NewRedisSessionStore(newMockRedis(), time.Hour)},
	}

	for _, tt := range stores {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := tt.store.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Get(missing) error = %v, want ErrSessionNotFound", err)
			}

			want := testSession()
			if err := tt.store.Save(ctx, want); err != nil {
				t.Fatalf("Save() error: %v", err)
			}

			got, err := tt.store.Get(ctx, want.ID)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if got.ID != want.ID {
				t.Errorf("ID = %q, want %q", got.ID, want.ID)
			}
			if got.CNN == nil || got.CNN.Emotion != "happy" || got.CNN.Scores[mood.Happy] != 0.8 {
				t.Errorf("CNN = %+v, want happy reading", got.CNN)
			}
			if got.Questionnaire == nil || got.Questionnaire.TopMood != mood.Sad {
				t.Errorf("Questionnaire = %+v, want sad", got.Questionnaire)
			}
			if got.UpdatedAt.IsZero() {
				t.Error("UpdatedAt not set")
			}

			// Mutating the returned copy must not change the store.
			got.CNN = nil
			again, err := tt.store.Get(ctx, want.ID)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if again.CNN == nil {
				t.Error("stored session changed through returned copy")
			}

			if err := tt.store.Delete(ctx, want.ID); err != nil {
				t.Fatalf("Delete() error: %v", err)
			}
			if _, err := tt.store.Get(ctx, want.ID); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Get() after Delete error = %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(time.Millisecond)
	s := newSession()
	if err := store.Save(context.Background(), s); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := store.Get(context.Background(), s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() error = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisSessionStore(t *testing.T) {
	t.Run("key and ttl", func(t *testing.T) {
		client := newMockRedis()
		store := NewRedisSessionStore(client, 30*time.Minute)
		s := newSession()
		if err := store.Save(context.Background(), s); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		if got := client.ttl["session:"+s.ID]; got != 30*time.Minute {
			t.Errorf("ttl = %v, want 30m", got)
		}
	})

	t.Run("backend error", func(t *testing.T) {
		client := newMockRedis()
		client.err = errors.New("connection refused")
		store := NewRedisSessionStore(client, time.Hour)

		if _, err := store.Get(context.Background(), "x"); err == nil || errors.Is(err, ErrSessionNotFound) {
			t.Errorf("Get() error = %v, want backend error", err)
		}
		if err := store.Save(context.Background(), newSession()); err == nil {
			t.Error("Save() expected error, got nil")
		}
	})
}

func TestSessionCookies(t *testing.T) {
	c := sessionCookies{secure: true, ttl: time.Hour}
	valid := newSession().ID

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   string
	}{
		{"none", nil, ""},
		{"valid", &http.Cookie{Name: sessionCookieName, Value: valid}, valid},
		{"not a uuid", &http.Cookie{Name: sessionCookieName, Value: "../../etc"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			if got := c.id(r); got != tt.want {
				t.Errorf("id() = %q, want %q", got, tt.want)
			}
		})
	}

	rec := httptest.NewRecorder()
	c.set(rec, valid)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if got := cookies[0]; !got.HttpOnly || !got.Secure || got.MaxAge != 3600 {
		t.Errorf("cookie = %+v, want HttpOnly Secure MaxAge=3600", got)
	}
}
