package emotion

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/justestif/go-mood-recommender/internal/mood"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestLabelMapping(t *testing.T) {
	tests := []struct {
		label Label
		want  mood.Category
	}{
		{Angry, mood.Angry},
		{Disgust, mood.Angry},
		{Fear, mood.Stressed},
		{Happy, mood.Happy},
		{Sad, mood.Sad},
		{Surprise, mood.Excited},
		{Neutral, mood.Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.label.String(), func(t *testing.T) {
			if got := tt.label.Mood(); got != tt.want {
				t.Errorf("%s.Mood() = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestRemapAllDisgust(t *testing.T) {
	var p Probabilities
	p[Disgust] = 1.0

	got := Remap(p)

	if got.Scores[mood.Angry] != 1.0 {
		t.Errorf("angry = %v, want 1.0", got.Scores[mood.Angry])
	}
	for _, c := range mood.Categories() {
		if c != mood.Angry && got.Scores[c] != 0 {
			t.Errorf("%s = %v, want 0", c, got.Scores[c])
		}
	}
	if got.Label != Disgust {
		t.Errorf("Label = %s, want %s", got.Label, Disgust)
	}
	if got.Mood != mood.Angry {
		t.Errorf("Mood = %q, want %q", got.Mood, mood.Angry)
	}
	if got.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", got.Confidence)
	}
}

func TestRemapPreservesMass(t *testing.T) {
	p := Probabilities{0.10, 0.05, 0.15, 0.30, 0.20, 0.12, 0.08}
	got := Remap(p)

	if !approxEqual(got.Scores.Total(), p.Total()) {
		t.Errorf("Total() = %v, want %v", got.Scores.Total(), p.Total())
	}
	if !approxEqual(got.Scores[mood.Angry], 0.15) {
		t.Errorf("angry = %v, want 0.15 (angry + disgust)", got.Scores[mood.Angry])
	}
	if !approxEqual(got.Scores[mood.Stressed], 0.15) {
		t.Errorf("stressed = %v, want 0.15", got.Scores[mood.Stressed])
	}
	if got.Label != Happy || got.Mood != mood.Happy {
		t.Errorf("top = %s/%s, want happy/happy", got.Label, got.Mood)
	}
	if len(got.Scores) != mood.NumCategories {
		t.Errorf("Scores has %d keys, want %d", len(got.Scores), mood.NumCategories)
	}

	raw := got.Probabilities.Map()
	if len(raw) != NumLabels {
		t.Fatalf("Map() has %d keys, want %d", len(raw), NumLabels)
	}
	if raw["happy"] != 0.30 || raw["disgust"] != 0.05 {
		t.Errorf("Map() = %v, want the classifier output by label name", raw)
	}
}

func TestRemapTopLabelTieBreak(t *testing.T) {
	// Disgust and fear tie; disgust comes first in classifier order.
	p := Probabilities{0, 0.4, 0.4, 0, 0, 0.2, 0}
	got := Remap(p)
	if got.Label != Disgust {
		t.Errorf("Label = %s, want %s", got.Label, Disgust)
	}
}

func TestRemapAllZero(t *testing.T) {
	got := Remap(Probabilities{})
	if got.Scores.Total() != 0 {
		t.Errorf("Total() = %v, want 0", got.Scores.Total())
	}
	if got.Label != Angry {
		t.Errorf("Label = %s, want %s", got.Label, Angry)
	}
}

func TestProbabilitiesFromMap(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]float64
		want    Probabilities
		wantErr bool
	}{
		{
			name:  "partial and case-insensitive",
			input: map[string]float64{"Happy": 0.9, "surprise": 0.1},
			want:  Probabilities{Happy: 0.9, Surprise: 0.1},
		},
		{
			name:    "unknown label",
			input:   map[string]float64{"contempt": 0.5},
			wantErr: true,
		},
		{
			name:    "negative",
			input:   map[string]float64{"sad": -0.1},
			wantErr: true,
		},
		{
			name:    "infinite",
			input:   map[string]float64{"sad": math.Inf(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProbabilitiesFromMap(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ProbabilitiesFromMap() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidProbabilities) {
					t.Errorf("error = %v, want %v", err, ErrInvalidProbabilities)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ProbabilitiesFromMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPClassifier(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantAnyErr bool
		wantTop    Label
	}{
		{
			name:    "face found",
			status:  http.StatusOK,
			body:    `{"face_found": true, "probabilities": {"happy": 0.7, "neutral": 0.3}}`,
			wantTop: Happy,
		},
		{
			name:    "no face",
			status:  http.StatusOK,
			body:    `{"face_found": false}`,
			wantErr: ErrNoFace,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `boom`,
			wantAnyErr: true,
		},
		{
			name:       "bad label",
			status:     http.StatusOK,
			body:       `{"face_found": true, "probabilities": {"bored": 1}}`,
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/v1/classify" {
					t.Errorf("request = %s %s, want POST /v1/classify", r.Method, r.URL.Path)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/octet-stream" {
					t.Errorf("Content-Type = %q", ct)
				}
				body, _ := io.ReadAll(r.Body)
				if string(body) != "jpeg-bytes" {
					t.Errorf("body = %q, want %q", body, "jpeg-bytes")
				}
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := NewHTTPClassifier(HTTPConfig{BaseURL: srv.URL + "/"})
			p, err := c.Classify(context.Background(), []byte("jpeg-bytes"))

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Classify() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantAnyErr:
				if err == nil {
					t.Fatal("Classify() error = nil, want error")
				}
			default:
				if err != nil {
					t.Fatalf("Classify() error: %v", err)
				}
				if got := Remap(p).Label; got != tt.wantTop {
					t.Errorf("top label = %s, want %s", got, tt.wantTop)
				}
			}
		})
	}
}

func TestHTTPClassifierBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClassifier(HTTPConfig{
		BaseURL:          srv.URL,
		FailureThreshold: 2,
		OpenTimeout:      time.Hour,
	})

	for i := 0; i < 2; i++ {
		if _, err := c.Classify(context.Background(), []byte("x")); err == nil {
			t.Fatalf("call %d: error = nil, want upstream failure", i)
		}
	}

	_, err := c.Classify(context.Background(), []byte("x"))
	if !errors.Is(err, ErrClassifierUnavailable) {
		t.Fatalf("Classify() error = %v, want %v", err, ErrClassifierUnavailable)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("upstream calls = %d, want 2", got)
	}
}

func TestHTTPClassifierNoFaceKeepsBreakerClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"face_found": false}`)
	}))
	defer srv.Close()

	c := NewHTTPClassifier(HTTPConfig{BaseURL: srv.URL, FailureThreshold: 1})
	for i := 0; i < 5; i++ {
		if _, err := c.Classify(context.Background(), []byte("x")); !errors.Is(err, ErrNoFace) {
			t.Fatalf("call %d: error = %v, want %v", i, err, ErrNoFace)
		}
	}
}

func TestServiceAnalyze(t *testing.T) {
	var disgusted Probabilities
	disgusted[Disgust] = 1

	tests := []struct {
		name     string
		stub     *StubClassifier
		image    []byte
		wantFace bool
		wantMood mood.Category
		wantErr  bool
	}{
		{
			name:     "face",
			stub:     &StubClassifier{Probabilities: disgusted},
			image:    []byte("img"),
			wantFace: true,
			wantMood: mood.Angry,
		},
		{
			name:  "no face",
			stub:  &StubClassifier{NoFace: true},
			image: []byte("img"),
		},
		{
			name:    "empty image",
			stub:    NeutralStub(),
			image:   nil,
			wantErr: true,
		},
		{
			name:    "classifier failure",
			stub:    &StubClassifier{Err: errors.New("model crashed")},
			image:   []byte("img"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.stub)
			reading, face, err := svc.Analyze(context.Background(), tt.image)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Analyze() error = %v, wantErr %v", err, tt.wantErr)
			}
			if face != tt.wantFace {
				t.Errorf("face = %v, want %v", face, tt.wantFace)
			}
			if tt.wantFace && reading.Mood != tt.wantMood {
				t.Errorf("Mood = %q, want %q", reading.Mood, tt.wantMood)
			}
		})
	}
}

func TestNeutralStub(t *testing.T) {
	p, err := NeutralStub().Classify(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if got := Remap(p).Mood; got != mood.Neutral {
		t.Errorf("Mood = %q, want %q", got, mood.Neutral)
	}
	if !approxEqual(p.Total(), 1.0) {
		t.Errorf("Total() = %v, want 1.0", p.Total())
	}
}
