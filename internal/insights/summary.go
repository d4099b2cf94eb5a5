package insights

import "github.com/justestif/go-mood-recommender/internal/mood"

// Summary aggregates a set of entries.
type Summary struct {
	Total         int                   `json:"total"`
	Counts        map[mood.Category]int `json:"counts"`
	MostFrequent  mood.Category         `json:"most_frequent,omitempty"`
	AverageScores mood.Distribution     `json:"average_scores"`
	CNNUsed       int                   `json:"cnn_used"`
	QuestUsed     int                   `json:"questionnaire_used"`
}

// Summarize counts final moods and averages the fused scores. Ties for the
// most frequent mood resolve in category order.
func Summarize(entries []Entry) Summary {
	s := Summary{
		Total:         len(entries),
		Counts:        make(map[mood.Category]int, mood.NumCategories),
		AverageScores: mood.NewDistribution(),
	}
	for _, c := range mood.Categories() {
		s.Counts[c] = 0
	}
	if len(entries) == 0 {
		return s
	}

	for _, e := range entries {
		if e.FinalMood.Valid() {
			s.Counts[e.FinalMood]++
		}
		s.AverageScores.Add(e.FinalScores)
		if e.CNNEmotion != "" {
			s.CNNUsed++
		}
		if e.QuestionnaireMood != "" {
			s.QuestUsed++
		}
	}

	best := 0
	for _, c := range mood.Categories() {
		if s.Counts[c] > best {
			best = s.Counts[c]
			s.MostFrequent = c
		}
	}

	n := float64(len(entries))
	for c, v := range s.AverageScores {
		s.AverageScores[c] = v / n
	}
	s.AverageScores = s.AverageScores.Rounded(4)
	return s
}
