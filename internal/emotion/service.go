package emotion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/justestif/go-mood-recommender/internal/metrics"
)

// ErrEmptyImage is returned by Analyze when no image bytes were given.
var ErrEmptyImage = errors.New("empty image")

// Service classifies images and remaps the result into moods.
type Service struct {
	classifier Classifier
}

// NewService creates a Service backed by c.
func NewService(c Classifier) *Service {
	return &Service{classifier: c}
}

// Analyze classifies image. The boolean is false when no face was found,
// in which case the reading is empty and the error nil.
func (s *Service) Analyze(ctx context.Context, image []byte) (Reading, bool, error) {
	if len(image) == 0 {
		return Reading{}, false, ErrEmptyImage
	}

	start := time.Now()
	p, err := s.classifier.Classify(ctx, image)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, ErrNoFace):
		metrics.RecordClassifierCall("no_face", elapsed)
		return Reading{}, false, nil
	case errors.Is(err, ErrClassifierUnavailable):
		metrics.RecordClassifierCall("rejected", elapsed)
		return Reading{}, false, err
	case err != nil:
		metrics.RecordClassifierCall("error", elapsed)
		return Reading{}, false, fmt.Errorf("classifying image: %w", err)
	}

	metrics.RecordClassifierCall("face", elapsed)
	return Remap(p), true, nil
}
