package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/pkg/http/respond"
)

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for the trivia endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err, "list categories")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"categories":       listing.Categories,
		"total_categories": listing.Total,
	})
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.fail(w, r, err, "list questions")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        listing.Questions,
		"total_questions":  listing.Total,
		"categories":       listing.Categories,
		"current_category": listing.CurrentCategory,
	})
}

// ListQuestionsByCategory handles GET /categories/{category_id}/questions.
func (h *HTTPHandlers) ListQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.PathValue("category_id"), 10, 64)
	if err != nil {
		respond.NotFound(w)
		return
	}
	listing, err := h.svc.ListQuestionsByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		h.fail(w, r, err, "list questions by category")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.NotFound(w)
		return
	}
	result, err := h.svc.DeleteQuestion(r.Context(), id, pageParam(r))
	if err != nil {
		h.fail(w, r, err, "delete question")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"deleted":         result.Deleted,
		"questions":       questionsOrEmpty(result.Questions),
		"total_questions": result.Total,
	})
}

// createOrSearchBody is the POST /questions payload. The endpoint branches
// on searchTerm: present means search, absent means create.
type createOrSearchBody struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int32  `json:"difficulty"`
	Category   int64  `json:"category"`
	SearchTerm string `json:"searchTerm"`
}

// CreateOrSearchQuestions handles POST /questions.
func (h *HTTPHandlers) CreateOrSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var body createOrSearchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w)
		return
	}

	if body.SearchTerm != "" {
		result, err := h.svc.SearchQuestions(r.Context(), body.SearchTerm)
		if err != nil {
			h.fail(w, r, err, "search questions")
			return
		}
		respond.JSON(w, http.StatusOK, map[string]any{
			"success":          true,
			"questions":        result.Questions,
			"total_questions":  result.Total,
			"current_category": result.CurrentCategory,
		})
		return
	}

	result, err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Question:   body.Question,
		Answer:     body.Answer,
		Category:   body.Category,
		Difficulty: body.Difficulty,
	})
	if err != nil {
		h.fail(w, r, err, "create question")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"created":         result.Created,
		"questions":       questionsOrEmpty(result.Questions),
		"total_questions": result.Total,
	})
}

type quizBody struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// NextQuizQuestion handles POST /quizzes. An exhausted candidate pool is a
// 200 with {"question": false}, not an error.
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var body quizBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w)
		return
	}
	question, err := h.svc.NextQuizQuestion(r.Context(), body.PreviousQuestions, body.QuizCategory)
	if err != nil {
		h.fail(w, r, err, "pick quiz question")
		return
	}
	if question == nil {
		respond.JSON(w, http.StatusOK, map[string]any{"question": false})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": question,
	})
}

// fail maps service errors onto the wire envelope: ErrNotFound stays a 404,
// everything else is logged and collapsed to a 500.
func (h *HTTPHandlers) fail(w http.ResponseWriter, r *http.Request, err error, op string) {
	if errors.Is(err, ErrNotFound) {
		respond.NotFound(w)
		return
	}
	logger := logging.FromContext(r.Context())
	if logger.GetLevel() == zerolog.Disabled {
		logger = h.logger
	}
	logger.Error().Err(err).Str("op", op).Msg("request failed")
	respond.Internal(w)
}

// pageParam reads the 1-based page query parameter, defaulting to 1 on
// absent or non-numeric values.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

func questionsOrEmpty(qs []Question) []Question {
	if qs == nil {
		return []Question{}
	}
	return qs
}
