package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"versematch/internal/analyzer"
	"versematch/internal/config"
	"versematch/internal/corpus"
	"versematch/internal/lexicon"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	lib, err := corpus.SampleLibrary()
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	cfg.Server.MaxBatch = 3
	cfg.Server.MaxBodyBytes = 4096
	return NewServer(analyzer.New(lib, lexicon.Default(), cfg.Matching), cfg)
}

func do(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	h := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, HealthResponse{Status: "ok", Books: 2, Verses: 16}, h)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/books/missing", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	e := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "abc-123", e.RequestID)
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/analyze", AnalyzeRequest{Text: "அகர முதல எழுத்தெல்லாம் ஆதி\nபகவன் முதற்றே உலகு"})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[analyzer.Result](t, rec)
	assert.True(t, res.Found)
	assert.Equal(t, "thirukkural", res.Source)
	assert.Equal(t, "1", res.Number)

	rec = do(t, s, http.MethodPost, "/analyze", AnalyzeRequest{Text: "123 !!!"})
	require.Equal(t, http.StatusOK, rec.Code)
	res = decodeBody[analyzer.Result](t, rec)
	assert.False(t, res.Found)
	assert.Equal(t, analyzer.SourceInvalid, res.Source)
}

func TestAnalyzeBadBodies(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/analyze", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	big := AnalyzeRequest{Text: strings.Repeat("அ", 4096)}
	rec = do(t, s, http.MethodPost, "/analyze", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = do(t, s, http.MethodGet, "/analyze", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyzeBatch(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/analyze/batch", BatchRequest{Texts: []string{"391", "", "வணக்கம்"}})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[BatchResponse](t, rec)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "391", resp.Results[0].Number)
	assert.Equal(t, analyzer.SourceUnknown, resp.Results[1].Source)
	assert.Equal(t, analyzer.SourceRandomText, resp.Results[2].Source)

	rec = do(t, s, http.MethodPost, "/analyze/batch", BatchRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/analyze/batch", BatchRequest{Texts: []string{"1", "2", "3", "4"}})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestBooks(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/books", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	books := decodeBody[BooksResponse](t, rec)
	require.Len(t, books.Books, 2)
	assert.Equal(t, "thirukkural", books.Books[0].Key)

	rec = do(t, s, http.MethodGet, "/books/kamba_ramayanam", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	book := decodeBody[BookResponse](t, rec)
	assert.Equal(t, "கம்பர்", book.Metadata.Author)

	rec = do(t, s, http.MethodGet, "/books/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerseLookup(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/books/thirukkural/verses/391", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeBody[VerseResponse](t, rec)
	assert.Equal(t, "391", v.Verse.VerseNumber)
	assert.Equal(t, "கல்வி", v.Verse.Chapter)

	rec = do(t, s, http.MethodGet, "/books/thirukkural/verses/99999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/books/missing/verses/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[corpus.Statistics](t, rec)
	assert.Equal(t, 2, stats.TotalBooks)
	assert.Equal(t, 16, stats.TotalLoadedVerses)
}

func TestAuthorBooks(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/authors/"+url.PathEscape("கம்பர்")+"/books", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[AuthorBooksResponse](t, rec)
	assert.Equal(t, "கம்பர்", resp.Author)
	assert.Equal(t, []string{"kamba_ramayanam"}, resp.Books)

	rec = do(t, s, http.MethodGet, "/authors/nobody/books", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"author":"nobody","books":[]}`, rec.Body.String())
}

func TestStartStopsOnCancel(t *testing.T) {
	s := newTestServer(t)
	s.http.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
