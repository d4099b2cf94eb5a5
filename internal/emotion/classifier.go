package emotion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/justestif/go-mood-recommender/internal/logging"
	"github.com/justestif/go-mood-recommender/internal/metrics"
)

// Sentinel errors.
var (
	// ErrNoFace is returned when the classifier found no face in the image.
	ErrNoFace = errors.New("no face detected")

	// ErrClassifierUnavailable is returned while the circuit breaker is open.
	ErrClassifierUnavailable = errors.New("emotion classifier unavailable")
)

// Classifier reports emotion probabilities for an image.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (Probabilities, error)
}

const (
	classifyPath     = "/v1/classify"
	maxResponseBytes = 64 << 10
	breakerName      = "emotion-classifier"
)

// HTTPConfig configures an HTTPClassifier.
type HTTPConfig struct {
	BaseURL string
	Timeout time.Duration

	// The breaker opens after FailureThreshold consecutive failures and
	// probes again after OpenTimeout.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// HTTPClassifier calls an external inference service.
//
// The service accepts the raw image as application/octet-stream on
// POST {base}/v1/classify and answers
//
//	{"face_found": true, "probabilities": {"angry": 0.1, "happy": 0.8, ...}}
type HTTPClassifier struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[Probabilities]
}

type classifyResponse struct {
	FaceFound     bool               `json:"face_found"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// NewHTTPClassifier creates a classifier client. Zero config values fall
// back to a 10s timeout, 5 failures and a 30s open period.
func NewHTTPClassifier(cfg HTTPConfig) *HTTPClassifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	threshold := cfg.FailureThreshold
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	logger := logging.With().Str("component", "classifier").Logger()

	cb := gobreaker.NewCircuitBreaker[Probabilities](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A picture without a face is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoFace) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &HTTPClassifier{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         cb,
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Classify sends the image to the inference service.
func (c *HTTPClassifier) Classify(ctx context.Context, image []byte) (Probabilities, error) {
	p, err := c.cb.Execute(func() (Probabilities, error) {
		return c.classify(ctx, image)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Probabilities{}, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	return p, err
}

func (c *HTTPClassifier) classify(ctx context.Context, image []byte) (Probabilities, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+classifyPath, bytes.NewReader(image))
	if err != nil {
		return Probabilities{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Probabilities{}, fmt.Errorf("calling classifier: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Probabilities{}, fmt.Errorf("reading classifier response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Probabilities{}, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var cr classifyResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return Probabilities{}, fmt.Errorf("parsing classifier response: %w", err)
	}
	if !cr.FaceFound {
		return Probabilities{}, ErrNoFace
	}

	p, err := ProbabilitiesFromMap(cr.Probabilities)
	if err != nil {
		return Probabilities{}, fmt.Errorf("parsing classifier response: %w", err)
	}
	return p, nil
}

// StubClassifier returns fixed output. It backs tests and the offline demo
// mode when no inference service is configured.
type StubClassifier struct {
	Probabilities Probabilities
	// NoFace makes every call return ErrNoFace.
	NoFace bool
	Err    error
}

// NeutralStub reports a mostly neutral face.
func NeutralStub() *StubClassifier {
	var p Probabilities
	p[Neutral] = 0.7
	p[Happy] = 0.2
	p[Sad] = 0.1
	return &StubClassifier{Probabilities: p}
}

func (s *StubClassifier) Classify(ctx context.Context, image []byte) (Probabilities, error) {
	if err := ctx.Err(); err != nil {
		return Probabilities{}, err
	}
	if s.Err != nil {
		return Probabilities{}, s.Err
	}
	if s.NoFace {
		return Probabilities{}, ErrNoFace
	}
	return s.Probabilities, nil
}

var (
	_ Classifier = (*HTTPClassifier)(nil)
	_ Classifier = (*StubClassifier)(nil)
)
