package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/justestif/go-mood-recommender/internal/db"
	"github.com/justestif/go-mood-recommender/internal/mood"
)

const (
	sessionCookieName = "analysis_id"

	// DefaultSessionTTL applies when a store is created with a zero TTL.
	DefaultSessionTTL = 24 * time.Hour

	redisKeyPrefix = "session:"
)

// ErrSessionNotFound is returned when a session is missing or expired.
var ErrSessionNotFound = errors.New("session not found")

// AnalysisSession is the per-browser state between the upload, questionnaire
// and results steps.
type AnalysisSession struct {
	ID            string               `json:"id"`
	CNN           *CNNResult           `json:"cnn,omitempty"`
	Questionnaire *QuestionnaireResult `json:"questionnaire,omitempty"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// CNNResult is the stored face reading.
type CNNResult struct {
	Emotion    string            `json:"emotion"`
	Mood       mood.Category     `json:"mood"`
	Confidence float64           `json:"confidence"`
	Scores     mood.Distribution `json:"scores"`
}

// QuestionnaireResult is the stored questionnaire outcome.
type QuestionnaireResult struct {
	TopMood mood.Category     `json:"top_mood"`
	Score   float64           `json:"score"`
	Scores  mood.Distribution `json:"scores"`
}

// SessionManager persists analysis sessions.
type SessionManager interface {
	Get(ctx context.Context, id string) (*AnalysisSession, error)
	Save(ctx context.Context, s *AnalysisSession) error
	Delete(ctx context.Context, id string) error
}

// ============================================================================
// In-Memory Session Store
// ============================================================================

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
	expires  map[string]time.Time
	ttl      time.Duration
}

// NewMemorySessionStore creates an in-memory store.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemorySessionStore{
		sessions: make(map[string][]byte),
		expires:  make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Get returns a copy of the stored session.
func (s *MemorySessionStore) Get(_ context.Context, id string) (*AnalysisSession, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	expires := s.expires[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(expires) {
		return nil, ErrSessionNotFound
	}
	return decodeSession(data)
}

// Save stores a snapshot of sess and drops expired entries.
func (s *MemorySessionStore) Save(_ context.Context, sess *AnalysisSession) error {
	data, err := encodeSession(sess)
	if err != nil {
		return err
	}

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, exp := range s.expires {
		if now.After(exp) {
			delete(s.sessions, id)
			delete(s.expires, id)
		}
	}
	s.sessions[sess.ID] = data
	s.expires[sess.ID] = now.Add(s.ttl)
	return nil
}

// Delete removes a session by ID.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	delete(s.expires, id)
	s.mu.Unlock()
	return nil
}

// ============================================================================
// Database-Backed Session Store
// ============================================================================

// SessionRepository is the storage used by DBSessionStore.
// *db.SessionRepository satisfies it.
type SessionRepository interface {
	Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

// DBSessionStore keeps sessions in PostgreSQL.
type DBSessionStore struct {
	repo SessionRepository
	ttl  time.Duration
}

// NewDBSessionStore creates a database-backed store.
func NewDBSessionStore(repo SessionRepository, ttl time.Duration) *DBSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &DBSessionStore{repo: repo, ttl: ttl}
}

func (s *DBSessionStore) Get(ctx context.Context, id string) (*AnalysisSession, error) {
	data, err := s.repo.Get(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

func (s *DBSessionStore) Save(ctx context.Context, sess *AnalysisSession) error {
	data, err := encodeSession(sess)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, sess.ID, data, time.Now().Add(s.ttl))
}

func (s *DBSessionStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ============================================================================
// Redis-Backed Session Store
// ============================================================================

// RedisClient is the subset of *redis.Client used by RedisSessionStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisSessionStore keeps sessions in Redis with a per-key TTL.
type RedisSessionStore struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisSessionStore creates a Redis-backed store.
func NewRedisSessionStore(client RedisClient, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*AnalysisSession, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return decodeSession(data)
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *AnalysisSession) error {
	data, err := encodeSession(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// ============================================================================
// Helper Functions
// ============================================================================

func newSession() *AnalysisSession {
	return &AnalysisSession{ID: uuid.NewString()}
}

func encodeSession(s *AnalysisSession) ([]byte, error) {
	s.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	return data, nil
}

func decodeSession(data []byte) (*AnalysisSession, error) {
	var s AnalysisSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &s, nil
}

// sessionCookies writes the session cookie.
type sessionCookies struct {
	secure bool
	ttl    time.Duration
}

func (c sessionCookies) id(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}

func (c sessionCookies) set(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.ttl.Seconds()),
	})
}

func (c sessionCookies) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		MaxAge:   -1,
	})
}

var (
	_ SessionManager    = (*MemorySessionStore)(nil)
	_ SessionManager    = (*DBSessionStore)(nil)
	_ SessionManager    = (*RedisSessionStore)(nil)
	_ SessionRepository = (*db.SessionRepository)(nil)
	_ RedisClient       = (*redis.Client)(nil)
)
