package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"versematch/internal/analyzer"
	"versematch/internal/corpus"
	"versematch/internal/logging"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// BatchRequest is the body of POST /analyze/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
}

// BatchResponse answers POST /analyze/batch in input order.
type BatchResponse struct {
	Results []analyzer.Result `json:"results"`
}

// BooksResponse answers GET /books.
type BooksResponse struct {
	Books []corpus.BookSummary `json:"books"`
}

// BookResponse answers GET /books/{key}.
type BookResponse struct {
	Key      string          `json:"key"`
	Metadata corpus.Metadata `json:"metadata"`
}

// VerseResponse answers GET /books/{key}/verses/{number}.
type VerseResponse struct {
	Key   string             `json:"key"`
	Verse corpus.VerseRecord `json:"verse"`
}

// AuthorBooksResponse answers GET /authors/{author}/books.
type AuthorBooksResponse struct {
	Author string   `json:"author"`
	Books  []string `json:"books"`
}

// HealthResponse answers GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Books  int    `json:"books"`
	Verses int    `json:"verses"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.analyzer.Statistics()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Books:  stats.TotalBooks,
		Verses: stats.TotalLoadedVerses,
	})
}

// handleAnalyze answers one query. Typed not-found results are still 200.
// POST /analyze
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.analyzer.AnalyzeWithRequest(middleware.GetReqID(r.Context()), req.Text))
}

// POST /analyze/batch
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	switch {
	case len(req.Texts) == 0:
		writeError(w, r, http.StatusBadRequest, "texts required")
		return
	case len(req.Texts) > s.cfg.Server.MaxBatch:
		writeError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch of %d exceeds limit %d", len(req.Texts), s.cfg.Server.MaxBatch))
		return
	}

	results, err := s.analyzer.AnalyzeBatch(r.Context(), req.Texts)
	if err != nil {
		logging.APIWarn("batch aborted: %v", err)
		writeError(w, r, http.StatusServiceUnavailable, "request cancelled")
		return
	}
	writeJSON(w, http.StatusOK, BatchResponse{Results: results})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.analyzer.Statistics())
}

func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BooksResponse{Books: s.analyzer.Books()})
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	key := urlParam(r, "key")
	meta, ok := s.analyzer.BookMetadata(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown book %q", key))
		return
	}
	writeJSON(w, http.StatusOK, BookResponse{Key: key, Metadata: meta})
}

func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	key := urlParam(r, "key")
	number := urlParam(r, "number")
	if _, ok := s.analyzer.BookMetadata(key); !ok {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown book %q", key))
		return
	}
	verse, ok := s.analyzer.LookupByNumber(key, number)
	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("%s has no verse %q", key, number))
		return
	}
	writeJSON(w, http.StatusOK, VerseResponse{Key: key, Verse: verse})
}

func (s *Server) handleAuthorBooks(w http.ResponseWriter, r *http.Request) {
	author := urlParam(r, "author")
	books := s.analyzer.BooksByAuthor(author)
	if books == nil {
		books = []string{}
	}
	writeJSON(w, http.StatusOK, AuthorBooksResponse{Author: author, Books: books})
}

var errBodyTooLarge = errors.New("request body too large")

// decode reads a JSON body capped at the configured size.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func statusFor(err error) int {
	if errors.Is(err, errBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// urlParam returns a path parameter, percent-decoded.
func urlParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.APIError("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, RequestID: middleware.GetReqID(r.Context())})
}
