package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhishek622/careercraft/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestApplication(cfg *config.Config) *application {
	gin.SetMode(gin.TestMode)
	return &application{Logger: zap.NewNop(), Config: cfg}
}

func okRouter(app *application, mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.OPTIONS("/ping", func(c *gin.Context) { c.Status(http.StatusMethodNotAllowed) })
	return r
}

func TestRequestID(t *testing.T) {
	app := newTestApplication(&config.Config{})
	r := okRouter(app, app.requestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("incoming request id not echoed, got %q", got)
	}
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{TrustedOrigins: []string{"http://localhost:5173"}}}
	app := newTestApplication(cfg)
	r := okRouter(app, app.cors())

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("untrusted origin must not be allowed, got %d %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{Limiter: config.RateLimiterConfig{RPS: 0.001, Burst: 2, Enabled: true}}
	app := newTestApplication(cfg)
	r := okRouter(app, app.rateLimit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("other clients have their own bucket, got %d", w.Code)
	}
}
