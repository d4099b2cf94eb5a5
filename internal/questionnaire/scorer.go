package questionnaire

import "github.com/justestif/go-mood-recommender/internal/mood"

// Response is one answered question.
type Response struct {
	QuestionID  string `json:"question_id"`
	OptionIndex int    `json:"option_index"`
}

// Result is the scored questionnaire.
type Result struct {
	Scores    mood.Distribution `json:"mood_scores"`
	TopMood   mood.Category     `json:"top_mood"`
	RawScores mood.Distribution `json:"raw_scores"`
	Answered  int               `json:"answered"`
	Skipped   int               `json:"skipped"`
}

// TopScore returns the normalized score of the top mood.
func (r Result) TopScore() float64 {
	return r.Scores[r.TopMood]
}

// Score accumulates the mood scores of the chosen options and normalizes
// them into a distribution.
//
// Responses naming an unknown question or an out-of-range option are
// skipped rather than failing the whole pass; a client may hold a stale
// index after a restart or a tree edit. When nothing valid remains the
// result is the uniform distribution.
func (t *Tree) Score(responses []Response) Result {
	raw := mood.NewDistribution()
	var answered, skipped int

	for _, r := range responses {
		node, ok := t.lookup(r.QuestionID)
		if !ok || r.OptionIndex < 0 || r.OptionIndex >= len(node.Options) {
			skipped++
			continue
		}
		raw.Add(node.Options[r.OptionIndex].MoodScores)
		answered++
	}

	var scores mood.Distribution
	if raw.Total() > 0 {
		scores = raw.Normalize()
	} else {
		scores = mood.Uniform()
	}

	top, _ := scores.Top()
	return Result{
		Scores:    scores,
		TopMood:   top,
		RawScores: raw,
		Answered:  answered,
		Skipped:   skipped,
	}
}
