// Package metrics holds the Prometheus collectors for the service and the
// small helpers that record into them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mood_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Analysis
	FusionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_fusion_total",
			Help: "Fusion results by final mood and which signals were present",
		},
		[]string{"mood", "signals"},
	)

	QuestionnaireSubmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mood_questionnaire_submissions_total",
			Help: "Questionnaire submissions scored",
		},
	)

	QuestionnaireSkippedResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mood_questionnaire_skipped_responses_total",
			Help: "Responses ignored because they named an unknown question or option",
		},
	)

	ClassifierCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_classifier_calls_total",
			Help: "Emotion classifier calls by outcome",
		},
		[]string{"outcome"}, // face, no_face, error, rejected
	)

	ClassifierDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mood_classifier_duration_seconds",
			Help:    "Emotion classifier latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mood_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Recommendations
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_recommendations_served_total",
			Help: "Recommendation sets served by mood",
		},
		[]string{"mood"},
	)

	HistoryWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mood_history_write_errors_total",
			Help: "Mood history entries that failed to persist",
		},
	)
)

// RecordFusion counts one fusion result.
func RecordFusion(mood string, cnnUsed, questUsed bool) {
	FusionTotal.WithLabelValues(mood, signalMix(cnnUsed, questUsed)).Inc()
}

func signalMix(cnnUsed, questUsed bool) string {
	switch {
	case cnnUsed && questUsed:
		return "both"
	case cnnUsed:
		return "cnn"
	case questUsed:
		return "questionnaire"
	default:
		return "none"
	}
}

// RecordQuestionnaire counts a scored submission and its skipped responses.
func RecordQuestionnaire(skipped int) {
	QuestionnaireSubmissions.Inc()
	if skipped > 0 {
		QuestionnaireSkippedResponses.Add(float64(skipped))
	}
}

// RecordClassifierCall counts a classifier call and observes its latency.
func RecordClassifierCall(outcome string, duration time.Duration) {
	ClassifierCalls.WithLabelValues(outcome).Inc()
	ClassifierDuration.Observe(duration.Seconds())
}

// Middleware records request counts and latency labelled by the chi route
// pattern, so /api/question/{id} is one series rather than one per id.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
