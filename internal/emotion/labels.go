// Package emotion turns raw facial-expression classifier output into the
// mood vocabulary used by the rest of the service.
//
// The classifier reports seven emotions. Each one maps onto exactly one
// mood, so remapping moves probability mass without creating or destroying
// any: the mood distribution sums to whatever the input summed to.
package emotion

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/justestif/go-mood-recommender/internal/mood"
)

// Label is a raw emotion reported by the classifier.
type Label int

// Labels in classifier output order.
const (
	Angry Label = iota
	Disgust
	Fear
	Happy
	Sad
	Surprise
	Neutral

	NumLabels = 7
)

var labelNames = [NumLabels]string{
	Angry:    "angry",
	Disgust:  "disgust",
	Fear:     "fear",
	Happy:    "happy",
	Sad:      "sad",
	Surprise: "surprise",
	Neutral:  "neutral",
}

var labelMoods = [NumLabels]mood.Category{
	Angry:    mood.Angry,
	Disgust:  mood.Angry,
	Fear:     mood.Stressed,
	Happy:    mood.Happy,
	Sad:      mood.Sad,
	Surprise: mood.Excited,
	Neutral:  mood.Neutral,
}

// ErrInvalidProbabilities is returned for classifier output that cannot be
// turned into a Probabilities vector.
var ErrInvalidProbabilities = errors.New("invalid emotion probabilities")

func (l Label) String() string {
	if l < 0 || int(l) >= NumLabels {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// Mood returns the mood category the label maps to.
func (l Label) Mood() mood.Category {
	return labelMoods[l]
}

// ParseLabel looks up a label by name, case-insensitively.
func ParseLabel(s string) (Label, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range labelNames {
		if name == s {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown emotion %q", ErrInvalidProbabilities, s)
}

// Probabilities is one classifier output, indexed by Label.
type Probabilities [NumLabels]float64

// ProbabilitiesFromMap builds a vector from a labelled response. Missing
// labels count as zero; unknown labels and negative or non-finite values
// are rejected.
func ProbabilitiesFromMap(m map[string]float64) (Probabilities, error) {
	var p Probabilities
	for name, v := range m {
		l, err := ParseLabel(name)
		if err != nil {
			return Probabilities{}, err
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Probabilities{}, fmt.Errorf("%w: %s = %v", ErrInvalidProbabilities, name, v)
		}
		p[l] = v
	}
	return p, nil
}

// Map returns the vector keyed by label name.
func (p Probabilities) Map() map[string]float64 {
	out := make(map[string]float64, NumLabels)
	for i, v := range p {
		out[labelNames[i]] = v
	}
	return out
}

// Total returns the sum of all entries.
func (p Probabilities) Total() float64 {
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum
}

// Reading is a remapped classifier output.
type Reading struct {
	// Label is the raw emotion with the highest probability.
	Label Label
	// Mood is Label's mood category.
	Mood mood.Category
	// Confidence is Label's raw probability.
	Confidence float64
	// Scores holds the classifier mass folded into mood categories.
	Scores mood.Distribution
	// Probabilities is the classifier output Scores was folded from.
	Probabilities Probabilities
}

// Remap folds the seven emotion probabilities into mood categories.
// The top label is the first maximal entry in classifier order.
func Remap(p Probabilities) Reading {
	scores := mood.NewDistribution()
	top := Label(0)
	for i, v := range p {
		scores[labelMoods[i]] += v
		if v > p[top] {
			top = Label(i)
		}
	}

	return Reading{
		Label:         top,
		Mood:          labelMoods[top],
		Confidence:    p[top],
		Scores:        scores,
		Probabilities: p,
	}
}
