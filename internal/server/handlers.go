package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"findoc-analyzer/internal/analysis"
	"findoc-analyzer/internal/common"
	"findoc-analyzer/internal/docstore"
)

// DefaultQuery replaces an empty or whitespace-only query field.
const DefaultQuery = "Analyze this financial document for investment insights"

const healthMessage = "Financial Document Analyzer API is running"

// Server drives the per-request pipeline: validate, persist, analyze,
// respond, clean up. It holds no per-request state itself.
type Server struct {
	store          *docstore.Store
	analyzer       analysis.Analyzer
	maxUploadBytes int64
	log            *slog.Logger
}

func NewServer(store *docstore.Store, analyzer analysis.Analyzer, maxUploadBytes int64, log *slog.Logger) *Server {
	return &Server{
		store:          store,
		analyzer:       analyzer,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// HealthHandler reports service liveness.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Message: healthMessage})
}

// AnalyzeHandler accepts a multipart upload (field "file", optional field
// "query") and returns the analysis report. The stored file is released on
// every exit path once it has been created.
func (s *Server) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method not allowed"})
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Detail: fmt.Sprintf("Uploaded file exceeds the %d byte limit", maxBytesErr.Limit),
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Failed to parse multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "file field is required"})
		return
	}
	defer file.Close()

	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" {
		query = DefaultQuery
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, common.WrapError(err, "reading upload"))
		return
	}

	doc, err := s.store.Save(data, header.Filename)
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer s.store.Release(doc)

	report, err := s.analyzer.Analyze(r.Context(), query, doc.Path)
	if err != nil {
		s.log.Warn("analyze.request.failed",
			"file", header.Filename,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		s.writeError(w, err)
		return
	}

	s.log.Info("analyze.request.ok",
		"file", header.Filename,
		"query_len", len(query),
		"report_len", len(report),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Status:        "success",
		Query:         query,
		Analysis:      report,
		FileProcessed: header.Filename,
	})
}

// writeError converts a pipeline error into the single-detail error contract.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := common.HTTPStatus(err)
	detail := "Error processing financial document: " + err.Error()
	if errors.Is(err, common.ErrUnsupportedFileType) {
		detail = "Only PDF files are supported"
	}
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
