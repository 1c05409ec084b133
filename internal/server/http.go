package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	"github.com/gokatarajesh/trivia-api/pkg/http/respond"
)

// DependencyPinger reports backing-store reachability for the health probe.
// *pgxpool.Pool satisfies it.
type DependencyPinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer wires the trivia routes plus health and metrics endpoints
// behind the shared middleware chain.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, db DependencyPinger, handlers *trivia.HTTPHandlers, metrics *Metrics) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			respond.JSON(w, http.StatusServiceUnavailable, map[string]any{"status": "degraded"})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", handlers.ListCategories)
	mux.HandleFunc("GET /categories/{category_id}/questions", handlers.ListQuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.ListQuestions)
	mux.HandleFunc("POST /questions", handlers.CreateOrSearchQuestions)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", handlers.NextQuizQuestion)

	var handler http.Handler = mux
	handler = metrics.Instrument(handler)
	handler = AccessLog(logger, handler)
	handler = CORS(cfg.CORS)(handler)
	handler = RequestID(handler)
	handler = Recover(logger, handler)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}
