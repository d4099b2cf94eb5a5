package db

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/justestif/go-mood-recommender/internal/insights"
	"github.com/justestif/go-mood-recommender/internal/mood"
)

// HistoryRepository stores completed analyses.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// Log inserts an entry, assigning its ID and timestamp when unset.
func (r *HistoryRepository) Log(ctx context.Context, e *insights.Entry) error {
	e.Prepare(time.Now())

	scores, err := json.Marshal(e.FinalScores.Complete())
	if err != nil {
		return fmt.Errorf("encoding final scores: %w", err)
	}

	query := `
		INSERT INTO mood_history (id, cnn_emotion, cnn_confidence, questionnaire_mood,
			questionnaire_score, final_mood, final_scores, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.pool.Exec(ctx, query,
		e.ID,
		nullString(e.CNNEmotion),
		e.CNNConfidence,
		nullString(string(e.QuestionnaireMood)),
		e.QuestionnaireScore,
		string(e.FinalMood),
		scores,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting mood history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *HistoryRepository) Recent(ctx context.Context, limit int) ([]insights.Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, cnn_emotion, cnn_confidence, questionnaire_mood, questionnaire_score,
			final_mood, final_scores, created_at
		FROM mood_history
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying mood history: %w", err)
	}
	defer rows.Close()

	entries := []insights.Entry{}
	for rows.Next() {
		var (
			e          insights.Entry
			cnnEmotion *string
			questMood  *string
			finalMood  string
			scores     []byte
		)
		if err := rows.Scan(
			&e.ID,
			&cnnEmotion,
			&e.CNNConfidence,
			&questMood,
			&e.QuestionnaireScore,
			&finalMood,
			&scores,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning mood history: %w", err)
		}
		if cnnEmotion != nil {
			e.CNNEmotion = *cnnEmotion
		}
		if questMood != nil {
			e.QuestionnaireMood = mood.Category(*questMood)
		}
		e.FinalMood = mood.Category(finalMood)
		if err := json.Unmarshal(scores, &e.FinalScores); err != nil {
			return nil, fmt.Errorf("decoding final scores: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood history: %w", err)
	}
	return entries, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ insights.History = (*HistoryRepository)(nil)
