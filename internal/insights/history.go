// Package insights records completed mood analyses and finds recurring
// patterns in them.
package insights

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/justestif/go-mood-recommender/internal/mood"
)

// Entry is one completed analysis.
type Entry struct {
	ID uuid.UUID `json:"id"`

	// CNNEmotion is the raw classifier label; empty when no face was used.
	CNNEmotion    string   `json:"cnn_emotion,omitempty"`
	CNNConfidence *float64 `json:"cnn_confidence,omitempty"`

	QuestionnaireMood  mood.Category `json:"questionnaire_mood,omitempty"`
	QuestionnaireScore *float64      `json:"questionnaire_score,omitempty"`

	FinalMood   mood.Category     `json:"final_mood"`
	FinalScores mood.Distribution `json:"final_scores"`
	CreatedAt   time.Time         `json:"created_at"`
}

// History stores entries. Recent returns the newest first.
type History interface {
	Log(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Prepare fills in the ID and timestamp when they are unset.
func (e *Entry) Prepare(now time.Time) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
}

// MemoryHistory keeps the most recent entries in memory.
type MemoryHistory struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

// NewMemoryHistory keeps at most max entries; older ones are dropped.
func NewMemoryHistory(max int) *MemoryHistory {
	if max <= 0 {
		max = 1000
	}
	return &MemoryHistory{max: max}
}

func (h *MemoryHistory) Log(ctx context.Context, e *Entry) error {
	e.Prepare(time.Now())

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, *e)
	if over := len(h.entries) - h.max; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	return nil
}

func (h *MemoryHistory) Recent(ctx context.Context, limit int) ([]Entry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := len(h.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, h.entries[i])
	}
	return out, nil
}

var _ History = (*MemoryHistory)(nil)
