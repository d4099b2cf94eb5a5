package mood

import (
	"errors"
	"math"
)

// Default fusion weights.
const (
	DefaultCNNWeight           = 0.6
	DefaultQuestionnaireWeight = 0.4
)

// ErrInvalidWeights is returned by Weights.Validate.
var ErrInvalidWeights = errors.New("invalid fusion weights")

// Weights controls how the two signals are blended when both are present.
// They need not sum to 1; the fused result is normalized afterwards.
type Weights struct {
	CNN           float64 `json:"cnn_weight" koanf:"cnn_weight"`
	Questionnaire float64 `json:"questionnaire_weight" koanf:"questionnaire_weight"`
}

// DefaultWeights returns 0.6 for the face signal and 0.4 for the questionnaire.
func DefaultWeights() Weights {
	return Weights{
		CNN:           DefaultCNNWeight,
		Questionnaire: DefaultQuestionnaireWeight,
	}
}

// Validate rejects negative, non-finite or all-zero weights.
func (w Weights) Validate() error {
	for _, v := range []float64{w.CNN, w.Questionnaire} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidWeights
		}
	}
	if w.CNN == 0 && w.Questionnaire == 0 {
		return ErrInvalidWeights
	}
	return nil
}

// FusionResult is the outcome of one Fuse call.
type FusionResult struct {
	Mood              Category     `json:"final_mood"`
	Scores            Distribution `json:"final_scores"`
	Confidence        float64      `json:"confidence"`
	CNNUsed           bool         `json:"cnn_used"`
	QuestionnaireUsed bool         `json:"quest_used"`
}

// Fuse combines the face-derived and questionnaire-derived distributions.
//
// A nil or empty distribution counts as absent. With both present every
// category is blended as w.CNN*cnn + w.Questionnaire*quest. A single
// present signal is used as-is, and with no signal at all the result puts
// all mass on Neutral. The fused scores are then normalized to sum to 1.
func Fuse(cnn, quest Distribution, w Weights) FusionResult {
	cnnUsed := len(cnn) > 0
	questUsed := len(quest) > 0

	fused := NewDistribution()
	switch {
	case cnnUsed && questUsed:
		for _, c := range categories {
			fused[c] = w.CNN*cnn[c] + w.Questionnaire*quest[c]
		}
	case cnnUsed:
		for _, c := range categories {
			fused[c] = cnn[c]
		}
	case questUsed:
		for _, c := range categories {
			fused[c] = quest[c]
		}
	default:
		fused[Neutral] = 1.0
	}

	// Normalize leaves an all-zero distribution untouched.
	fused = fused.Normalize()

	top, confidence := fused.Top()
	return FusionResult{
		Mood:              top,
		Scores:            fused,
		Confidence:        confidence,
		CNNUsed:           cnnUsed,
		QuestionnaireUsed: questUsed,
	}
}
