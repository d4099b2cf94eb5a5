package web

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/justestif/go-mood-recommender/internal/catalog"
	"github.com/justestif/go-mood-recommender/internal/emotion"
	"github.com/justestif/go-mood-recommender/internal/insights"
	"github.com/justestif/go-mood-recommender/internal/logging"
	"github.com/justestif/go-mood-recommender/internal/metrics"
	"github.com/justestif/go-mood-recommender/internal/mood"
	"github.com/justestif/go-mood-recommender/internal/questionnaire"
	"github.com/justestif/go-mood-recommender/internal/recommend"
	"github.com/justestif/go-mood-recommender/internal/validation"
)

const (
	defaultHistoryLimit = 20
	maxJSONBody         = 1 << 20
)

// Deps holds everything the handlers need.
type Deps struct {
	Tree      *questionnaire.Tree
	Analyzer  *emotion.Service
	Engine    *recommend.Engine
	History   insights.History
	Sessions  SessionManager
	Templates *Templates

	Weights       mood.Weights
	PatternConfig insights.PatternConfig
	HistoryLimit  int

	MaxUploadBytes int64
	SessionTTL     time.Duration
	CookieSecure   bool

	// Health is optional; it is called by GET /health.
	Health func(ctx context.Context) error
}

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	Deps
	cookies sessionCookies
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(d Deps) *Handlers {
	if d.MaxUploadBytes <= 0 {
		d.MaxUploadBytes = 10 << 20
	}
	if d.HistoryLimit <= 0 {
		d.HistoryLimit = 500
	}
	if d.SessionTTL <= 0 {
		d.SessionTTL = DefaultSessionTTL
	}
	return &Handlers{
		Deps:    d,
		cookies: sessionCookies{secure: d.CookieSecure, ttl: d.SessionTTL},
	}
}

// ============================================================================
// Pages
// ============================================================================

// Index renders the home page and starts a fresh analysis (GET /).
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if id := h.cookies.id(r); id != "" {
		if err := h.Sessions.Delete(r.Context(), id); err != nil {
			logging.Warn().Err(err).Msg("Failed to clear session")
		}
		h.cookies.clear(w)
	}

	h.render(w, "index", IndexPageData{
		PageData:    PageData{Title: "Mood Recommender", CurrentPath: r.URL.Path},
		MaxUploadMB: h.MaxUploadBytes >> 20,
	})
}

// Questionnaire renders the questionnaire page (GET /questionnaire).
func (h *Handlers) Questionnaire(w http.ResponseWriter, r *http.Request) {
	first, err := h.Tree.First()
	if err != nil {
		http.Error(w, "Questionnaire unavailable", http.StatusInternalServerError)
		return
	}
	h.render(w, "questionnaire", QuestionnairePageData{
		PageData: PageData{Title: "A few questions", CurrentPath: r.URL.Path},
		First:    first,
	})
}

// Results renders the fused mood and recommendations (GET /results).
func (h *Handlers) Results(w http.ResponseWriter, r *http.Request) {
	sess := h.loadSession(w, r)
	fusion, recs, err := h.recommend(r.Context(), sess)
	if err != nil {
		logging.Err(err).Msg("Failed to build recommendations")
		http.Error(w, "Failed to build recommendations", http.StatusInternalServerError)
		return
	}

	h.render(w, "results", ResultsPageData{
		PageData:      PageData{Title: "Your results", CurrentPath: r.URL.Path},
		Fusion:        fusion,
		CNN:           sess.CNN,
		Questionnaire: sess.Questionnaire,
		Songs:         recs.Songs,
		Movies:        recs.Movies,
	})
}

func (h *Handlers) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Templates.Render(w, page, data); err != nil {
		logging.Err(err).Str("page", page).Msg("Failed to render template")
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

// ============================================================================
// Image analysis
// ============================================================================

type uploadRequest struct {
	Image string `json:"image" validate:"required"`
}

type uploadResponse struct {
	FaceFound  bool               `json:"face_found"`
	Message    string             `json:"message,omitempty"`
	Emotion    string             `json:"emotion,omitempty"`
	Mood       mood.Category      `json:"mood,omitempty"`
	Confidence *float64           `json:"confidence,omitempty"`
	MoodScores mood.Distribution  `json:"mood_scores,omitempty"`
	Emotions   map[string]float64 `json:"emotions,omitempty"`
}

// Upload classifies an uploaded face image (POST /upload).
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	image, err := readImage(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "image too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reading, found, err := h.Analyzer.Analyze(r.Context(), image)
	switch {
	case errors.Is(err, emotion.ErrEmptyImage):
		writeError(w, http.StatusBadRequest, "no image provided")
		return
	case errors.Is(err, emotion.ErrClassifierUnavailable):
		writeError(w, http.StatusServiceUnavailable, "emotion classifier unavailable")
		return
	case err != nil:
		logging.Err(err).Msg("Image analysis failed")
		writeError(w, http.StatusBadGateway, "image analysis failed")
		return
	}

	sess := h.loadSession(w, r)

	if !found {
		sess.CNN = nil
		if err := h.Sessions.Save(r.Context(), sess); err != nil {
			h.sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, uploadResponse{
			FaceFound: false,
			Message:   "No face detected. Try another photo or skip this step.",
		})
		return
	}

	scores := reading.Scores
	if scores.Total() == 0 {
		scores = mood.Uniform()
	}
	sess.CNN = &CNNResult{
		Emotion:    reading.Label.String(),
		Mood:       reading.Mood,
		Confidence: reading.Confidence,
		Scores:     scores,
	}
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		h.sessionError(w, err)
		return
	}

	emotions := reading.Probabilities.Map()
	for k, v := range emotions {
		emotions[k] = round(v, 4)
	}
	confidence := round(reading.Confidence*100, 1)
	writeJSON(w, http.StatusOK, uploadResponse{
		FaceFound:  true,
		Emotion:    reading.Label.String(),
		Mood:       reading.Mood,
		Confidence: &confidence,
		MoodScores: scores.Rounded(4),
		Emotions:   emotions,
	})
}

// readImage accepts a multipart "image" field or a JSON body carrying a
// base64 data URL.
func readImage(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("image")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, errors.New("missing image field")
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, errors.New("invalid JSON body")
	}
	if err := validation.Struct(req); err != nil {
		return nil, errors.New("no image provided")
	}
	return decodeDataURL(req.Image)
}

func decodeDataURL(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		i := strings.IndexByte(s, ',')
		if i < 0 {
			return nil, errors.New("malformed data URL")
		}
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.New("image is not valid base64")
	}
	return data, nil
}

// ============================================================================
// Questionnaire API
// ============================================================================

// FirstQuestion returns the root question (GET /api/first-question).
func (h *Handlers) FirstQuestion(w http.ResponseWriter, r *http.Request) {
	node, err := h.Tree.First()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "questionnaire unavailable")
		return
	}
	writeJSON(w, http.StatusOK, node)
}

// Question returns one question by ID (GET /api/question/{id}).
func (h *Handlers) Question(w http.ResponseWriter, r *http.Request) {
	node, ok := h.Tree.Node(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	writeJSON(w, http.StatusOK, node)
}

type questionsResponse struct {
	Root      string               `json:"root"`
	Questions []questionnaire.Node `json:"questions"`
}

// Questions lists every question in key order (GET /api/questions).
func (h *Handlers) Questions(w http.ResponseWriter, r *http.Request) {
	first, err := h.Tree.First()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "questionnaire unavailable")
		return
	}
	keys := h.Tree.Keys()
	nodes := make([]questionnaire.Node, 0, len(keys))
	for _, k := range keys {
		if n, ok := h.Tree.Node(k); ok {
			nodes = append(nodes, n)
		}
	}
	writeJSON(w, http.StatusOK, questionsResponse{Root: first.ID, Questions: nodes})
}

// WalkQuestions replays a path of option indices from the root and returns
// the questions it passes (GET /api/questions/walk?path=0,2,1).
func (h *Handlers) WalkQuestions(w http.ResponseWriter, r *http.Request) {
	var path []int
	if v := r.URL.Query().Get("path"); v != "" {
		for _, part := range strings.Split(v, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				writeError(w, http.StatusBadRequest, "path must be comma-separated option indices")
				return
			}
			path = append(path, n)
		}
	}

	nodes, err := h.Tree.Walk(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": nodes})
}

type submitRequest struct {
	Responses []questionnaire.Response `json:"responses" validate:"required,min=1,max=1000"`
}

type submitResponse struct {
	TopMood    mood.Category     `json:"top_mood"`
	MoodScores mood.Distribution `json:"mood_scores"`
	Answered   int               `json:"answered"`
	Skipped    int               `json:"skipped"`
}

// SubmitQuestionnaire scores a completed questionnaire
// (POST /api/submit-questionnaire).
func (h *Handlers) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Responses) == 0 {
		writeError(w, http.StatusBadRequest, "no responses provided")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	result := h.Tree.Score(req.Responses)
	metrics.RecordQuestionnaire(result.Skipped)

	sess := h.loadSession(w, r)
	sess.Questionnaire = &QuestionnaireResult{
		TopMood: result.TopMood,
		Score:   result.TopScore(),
		Scores:  result.Scores,
	}
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		h.sessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		TopMood:    result.TopMood,
		MoodScores: result.Scores.Rounded(4),
		Answered:   result.Answered,
		Skipped:    result.Skipped,
	})
}

// SkipImage drops the face signal (POST /api/skip-image).
func (h *Handlers) SkipImage(w http.ResponseWriter, r *http.Request) {
	sess := h.loadSession(w, r)
	sess.CNN = nil
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		h.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "skipped"})
}

// SkipQuestionnaire drops the questionnaire signal
// (POST /api/skip-questionnaire).
func (h *Handlers) SkipQuestionnaire(w http.ResponseWriter, r *http.Request) {
	sess := h.loadSession(w, r)
	sess.Questionnaire = nil
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		h.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "skipped"})
}

// ============================================================================
// Fusion and results API
// ============================================================================

type fuseRequest struct {
	CNNScores           mood.Distribution `json:"cnn_scores"`
	QuestionnaireScores mood.Distribution `json:"questionnaire_scores"`
	CNNWeight           *float64          `json:"cnn_weight" validate:"omitempty,gte=0"`
	QuestionnaireWeight *float64          `json:"questionnaire_weight" validate:"omitempty,gte=0"`
}

// Fuse blends caller-supplied distributions without touching the session
// (POST /api/fuse).
func (h *Handlers) Fuse(w http.ResponseWriter, r *http.Request) {
	var req fuseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	weights := h.Weights
	if req.CNNWeight != nil {
		weights.CNN = *req.CNNWeight
	}
	if req.QuestionnaireWeight != nil {
		weights.Questionnaire = *req.QuestionnaireWeight
	}
	if err := weights.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "weights must be non-negative and not both zero")
		return
	}

	result := mood.Fuse(req.CNNScores, req.QuestionnaireScores, weights)
	metrics.RecordFusion(string(result.Mood), result.CNNUsed, result.QuestionnaireUsed)

	result.Scores = result.Scores.Rounded(4)
	result.Confidence = round(result.Confidence, 4)
	writeJSON(w, http.StatusOK, result)
}

type resultsResponse struct {
	FinalMood     mood.Category        `json:"final_mood"`
	Emoji         string               `json:"emoji"`
	Confidence    float64              `json:"confidence"`
	FinalScores   mood.Distribution    `json:"final_scores"`
	CNNUsed       bool                 `json:"cnn_used"`
	QuestUsed     bool                 `json:"quest_used"`
	CNN           *CNNResult           `json:"cnn,omitempty"`
	Questionnaire *QuestionnaireResult `json:"questionnaire,omitempty"`
	Songs         []catalog.Song       `json:"songs"`
	Movies        []catalog.Movie      `json:"movies"`
	HistoryID     string               `json:"history_id,omitempty"`
}

// APIResults fuses the session signals and returns recommendations
// (GET /api/results).
func (h *Handlers) APIResults(w http.ResponseWriter, r *http.Request) {
	sess := h.loadSession(w, r)
	fusion, recs, err := h.recommend(r.Context(), sess)
	if err != nil {
		logging.Err(err).Msg("Failed to build recommendations")
		writeError(w, http.StatusInternalServerError, "failed to build recommendations")
		return
	}

	writeJSON(w, http.StatusOK, resultsResponse{
		FinalMood:     fusion.Mood,
		Emoji:         recs.Emoji,
		Confidence:    round(fusion.Confidence*100, 1),
		FinalScores:   fusion.Scores.Rounded(4),
		CNNUsed:       fusion.CNNUsed,
		QuestUsed:     fusion.QuestionnaireUsed,
		CNN:           sess.CNN,
		Questionnaire: sess.Questionnaire,
		Songs:         recs.Songs,
		Movies:        recs.Movies,
		HistoryID:     recs.HistoryID,
	})
}

// recommend fuses the session and asks the engine for recommendations.
func (h *Handlers) recommend(ctx context.Context, sess *AnalysisSession) (mood.FusionResult, *recommend.Recommendations, error) {
	var cnn, quest mood.Distribution
	req := recommend.Request{}

	if c := sess.CNN; c != nil {
		cnn = c.Scores
		conf := c.Confidence
		req.CNNEmotion = c.Emotion
		req.CNNConfidence = &conf
	}
	if q := sess.Questionnaire; q != nil {
		quest = q.Scores
		score := q.Score
		req.QuestionnaireMood = q.TopMood
		req.QuestionnaireScore = &score
	}

	fusion := mood.Fuse(cnn, quest, h.Weights)
	metrics.RecordFusion(string(fusion.Mood), fusion.CNNUsed, fusion.QuestionnaireUsed)
	req.Fusion = fusion

	recs, err := h.Engine.Recommend(ctx, req)
	if err != nil {
		return fusion, nil, err
	}
	return fusion, recs, nil
}

// ============================================================================
// History API
// ============================================================================

type historyResponse struct {
	Entries []insights.Entry `json:"entries"`
	Summary insights.Summary `json:"summary"`
}

// HistoryList lists recent analyses (GET /api/history?limit=N).
func (h *Handlers) HistoryList(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, h.HistoryLimit)
	}

	entries, err := h.History.Recent(r.Context(), limit)
	if err != nil {
		logging.Err(err).Msg("Failed to read mood history")
		writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Entries: entries,
		Summary: insights.Summarize(entries),
	})
}

type patternsResponse struct {
	Analyzed int                `json:"analyzed"`
	Patterns []insights.Pattern `json:"patterns"`
	Outliers int                `json:"outliers"`
}

// Patterns clusters recent analyses into recurring moods
// (GET /api/history/patterns).
func (h *Handlers) Patterns(w http.ResponseWriter, r *http.Request) {
	entries, err := h.History.Recent(r.Context(), h.HistoryLimit)
	if err != nil {
		logging.Err(err).Msg("Failed to read mood history")
		writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}

	patterns, outliers := insights.DetectPatterns(entries, h.PatternConfig)
	if patterns == nil {
		patterns = []insights.Pattern{}
	}
	writeJSON(w, http.StatusOK, patternsResponse{
		Analyzed: len(entries),
		Patterns: patterns,
		Outliers: len(outliers),
	})
}

// HealthCheck reports liveness and, when configured, database reachability.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.Health(ctx); err != nil {
			logging.Warn().Err(err).Msg("Health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ============================================================================
// Helper Functions
// ============================================================================

// loadSession returns the caller's session, starting a new one when the
// cookie is missing or stale.
func (h *Handlers) loadSession(w http.ResponseWriter, r *http.Request) *AnalysisSession {
	if id := h.cookies.id(r); id != "" {
		sess, err := h.Sessions.Get(r.Context(), id)
		if err == nil {
			return sess
		}
		if !errors.Is(err, ErrSessionNotFound) {
			logging.Warn().Err(err).Msg("Failed to load session")
		}
	}
	sess := newSession()
	h.cookies.set(w, sess.ID)
	return sess
}

func (h *Handlers) sessionError(w http.ResponseWriter, err error) {
	logging.Err(err).Msg("Failed to save session")
	writeError(w, http.StatusInternalServerError, "failed to save session")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
