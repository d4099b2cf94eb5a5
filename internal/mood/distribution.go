package mood

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Distribution maps mood categories to non-negative scores.
//
// A partial Distribution (for example one questionnaire option's
// contribution) may leave categories out; missing categories read as zero.
// Every Distribution returned by Normalize, Uniform, AllOn or Complete
// carries all six keys.
type Distribution map[Category]float64

// NewDistribution returns a Distribution with every category at zero.
func NewDistribution() Distribution {
	d := make(Distribution, NumCategories)
	for _, c := range categories {
		d[c] = 0
	}
	return d
}

// Uniform returns 1/6 on every category.
func Uniform() Distribution {
	d := make(Distribution, NumCategories)
	for _, c := range categories {
		d[c] = 1.0 / NumCategories
	}
	return d
}

// AllOn returns a Distribution with all mass on c.
func AllOn(c Category) Distribution {
	d := NewDistribution()
	d[c] = 1.0
	return d
}

// Get returns the score for c, zero when absent.
func (d Distribution) Get(c Category) float64 {
	return d[c]
}

// Total sums the scores of the six categories. Keys outside the category
// set are ignored.
func (d Distribution) Total() float64 {
	var total float64
	for _, c := range categories {
		total += d[c]
	}
	return total
}

// Complete returns a copy with all six categories present.
func (d Distribution) Complete() Distribution {
	out := make(Distribution, NumCategories)
	for _, c := range categories {
		out[c] = d[c]
	}
	return out
}

// Add accumulates other into d. d must be non-nil.
func (d Distribution) Add(other Distribution) {
	for _, c := range categories {
		if v, ok := other[c]; ok {
			d[c] += v
		}
	}
}

// Normalize returns a complete copy scaled to sum to 1. When the total is
// exactly zero the complete copy is returned unscaled; callers choose their
// own fallback for that case.
func (d Distribution) Normalize() Distribution {
	out := d.Complete()
	total := out.Total()
	if total <= 0 {
		return out
	}
	for _, c := range categories {
		out[c] /= total
	}
	return out
}

// Top returns the category with the greatest score and that score.
// Ties resolve to the first maximal category in declaration order, so equal
// inputs always produce the same answer.
func (d Distribution) Top() (Category, float64) {
	best := categories[0]
	bestScore := d[best]
	for _, c := range categories[1:] {
		if d[c] > bestScore {
			best = c
			bestScore = d[c]
		}
	}
	return best, bestScore
}

// Rounded returns a complete copy with every score rounded to the given
// number of decimal places. Presentation only.
func (d Distribution) Rounded(places int) Distribution {
	scale := math.Pow(10, float64(places))
	out := d.Complete()
	for _, c := range categories {
		out[c] = math.Round(out[c]*scale) / scale
	}
	return out
}

// Validate checks that every key is a known category and every score is a
// finite non-negative number.
func (d Distribution) Validate() error {
	for c, v := range d {
		if !c.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid score %v for %s", v, c)
		}
	}
	return nil
}

// MarshalJSON writes the six categories in declaration order.
func (d Distribution) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 128)
	buf = append(buf, '{')
	for i, c := range categories {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendQuote(buf, string(c))
		buf = append(buf, ':')
		buf = strconv.AppendFloat(buf, d[c], 'g', -1, 64)
	}
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalJSON accepts an object keyed by category names. Unknown keys and
// negative scores are rejected.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*d = nil
		return nil
	}
	out := make(Distribution, len(raw))
	for k, v := range raw {
		c, err := ParseCategory(k)
		if err != nil {
			return err
		}
		out[c] = v
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*d = out
	return nil
}
