package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"findoc-analyzer/internal/analysis"
	"findoc-analyzer/internal/common"
	"findoc-analyzer/internal/docstore"
)

// NewHTTPServer wires the handlers into an http.Server with the configured
// timeouts. The write timeout has to cover the external analysis call, which
// can take tens of seconds against a real LLM backend.
func NewHTTPServer(cfg common.ServerConfig, store *docstore.Store, analyzer analysis.Analyzer, log *slog.Logger) *http.Server {
	s := NewServer(store, analyzer, cfg.MaxUploadBytes, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HealthHandler)
	mux.HandleFunc("/analyze", s.AnalyzeHandler)

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      requestLogging(log, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogging tags every request with a fresh ID, propagated through the
// context so downstream log lines correlate with the request.
func requestLogging(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := uuid.New().String()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(common.WithRequestID(r.Context(), rid)))
		log.Info("http.request",
			"req_id", rid,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
		)
	})
}
