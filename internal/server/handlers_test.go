package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobshield/jobshield/internal/analyzer"
	"github.com/jobshield/jobshield/internal/config"
	"github.com/jobshield/jobshield/internal/domainage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubFetcher struct {
	body []byte
	err  error
}

func (s stubFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	return s.body, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Port:             "8080",
		Env:              "test",
		LogLevel:         "error",
		FetchTimeout:     time.Second,
		FetchMaxBytes:    1 << 20,
		DomainAgeDays:    365,
		MinDomainAgeDays: 90,
		RateLimitRPM:     1000,
	}
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	quiet := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	opts = append([]Option{WithLogger(quiet)}, opts...)

	srv, err := New(testConfig(), opts...)
	require.NoError(t, err)
	t.Cleanup(srv.rateLimiter.Stop)
	return srv
}

func postJSON(t *testing.T, srv *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.router.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) analyzer.Result {
	t.Helper()

	var r analyzer.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestAnalyzeMessage(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/v1/analyze-message", gin.H{
		"message_text": "Pay KES 1000 now via WhatsApp",
	})

	require.Equal(t, http.StatusOK, w.Code)
	r := decodeResult(t, w)
	assert.Equal(t, analyzer.RiskHigh, r.RiskLevel)
	assert.Equal(t, 100, r.RiskScore)
	assert.Equal(t, []string{
		"Payment Request",
		"Urgency Manipulation",
		"Off-Platform Communication",
	}, r.DetectedPatterns)
}

func TestAnalyzeMessageMissingField(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/v1/analyze-message", gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestAnalyzeMessageMalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze-message", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeLink(t *testing.T) {
	page := []byte("<html><body><h1>Welcome</h1><p>We are hiring engineers.</p></body></html>")
	srv := newTestServer(t,
		WithFetcher(stubFetcher{body: page}),
		WithDomainAge(domainage.Static{Days: 3650}),
	)

	w := postJSON(t, srv, "/v1/analyze-link", gin.H{"url": "http://example.com"})

	require.Equal(t, http.StatusOK, w.Code)
	r := decodeResult(t, w)
	assert.Equal(t, analyzer.RiskMedium, r.RiskLevel)
	assert.Equal(t, 45, r.RiskScore)
	assert.Equal(t, []string{"No HTTPS", "No Contact Info"}, r.DetectedPatterns)
}

func TestAnalyzeLinkRejectsNonHTTPURL(t *testing.T) {
	srv := newTestServer(t)

	for _, bad := range []string{"ftp://example.com", "example.com", "javascript:alert(1)"} {
		w := postJSON(t, srv, "/v1/analyze-link", gin.H{"url": bad})
		assert.Equal(t, http.StatusBadRequest, w.Code, "url %q", bad)
		assert.Contains(t, w.Body.String(), "validation_error")
	}
}

func TestAnalyzeLinkFetchFailure(t *testing.T) {
	srv := newTestServer(t,
		WithFetcher(stubFetcher{err: errors.New("connection refused")}),
		WithDomainAge(domainage.Static{Days: 3650}),
	)

	w := postJSON(t, srv, "/v1/analyze-link", gin.H{"url": "https://unreachable.example.com"})

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "fetch_failed")
}

func TestAnalyzeEmail(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/v1/analyze-email", gin.H{
		"email_text":   "To proceed, pay KES 1500 for onboarding.",
		"sender_email": "hr@gmail.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	r := decodeResult(t, w)
	assert.Equal(t, analyzer.RiskHigh, r.RiskLevel)
	assert.Equal(t, 90, r.RiskScore)
	assert.Equal(t, []string{"Free Email Domain", "Payment Request"}, r.DetectedPatterns)
}

func TestAnalyzeEmailNeutral(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/v1/analyze-email", gin.H{
		"email_text":   "Thank you for applying. We look forward to meeting you on Monday.",
		"sender_email": "hr@techcorp.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	r := decodeResult(t, w)
	assert.Equal(t, analyzer.RiskLow, r.RiskLevel)
	assert.Zero(t, r.RiskScore)
	assert.Empty(t, r.DetectedPatterns)
	assert.Equal(t, analyzer.NoRiskExplanation, r.Explanation)
	assert.Equal(t, analyzer.DefaultAdvice, r.Advice)
}

func TestAnalyzeEmailInvalidSender(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/v1/analyze-email", gin.H{
		"email_text":   "hello",
		"sender_email": "not-an-email",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestAnalyzeEmailUnresolvableDomain(t *testing.T) {
	srv := newTestServer(t)

	// Well-formed address whose host is a bare public suffix; binding passes
	// but the analyzer cannot derive a registrable domain.
	w := postJSON(t, srv, "/v1/analyze-email", gin.H{
		"email_text":   "hello",
		"sender_email": "jobs@co.uk",
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "unprocessable")
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Ready only after Run(); New() alone leaves the server not ready.
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestInfoEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "JobShield")
	assert.Contains(t, w.Body.String(), "/v1/analyze-message")
}

func TestRequestIDAndSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// One observed request so the counter vector has something to expose.
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobshield_http_requests_total")
}
