// Package mood defines the six mood categories, the score distributions
// over them, and the fusion of two independent mood estimates.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the six recommendation buckets.
type Category string

const (
	Happy    Category = "happy"
	Sad      Category = "sad"
	Angry    Category = "angry"
	Neutral  Category = "neutral"
	Excited  Category = "excited"
	Stressed Category = "stressed"
)

// NumCategories is the size of the closed category set.
const NumCategories = 6

// ErrUnknownCategory is returned when a string does not name a mood category.
var ErrUnknownCategory = errors.New("unknown mood category")

// categories is the declaration order. Top and every other argmax in the
// module pick the first maximal entry in this order.
var categories = [NumCategories]Category{Happy, Sad, Angry, Neutral, Excited, Stressed}

var emojis = map[Category]string{
	Happy:    "😊",
	Sad:      "😢",
	Angry:    "😠",
	Neutral:  "😐",
	Excited:  "🤩",
	Stressed: "😰",
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	copy(out, categories[:])
	return out
}

// ParseCategory converts a string such as "Happy" or " sad" to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the six categories.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of c in declaration order, or -1.
func (c Category) Index() int {
	for i, known := range categories {
		if known == c {
			return i
		}
	}
	return -1
}

// Emoji returns the display glyph for the category.
func (c Category) Emoji() string {
	if e, ok := emojis[c]; ok {
		return e
	}
	return "🎭"
}

func (c Category) String() string {
	return string(c)
}
