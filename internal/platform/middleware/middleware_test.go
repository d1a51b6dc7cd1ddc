package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestID_Generated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen, _ = c.Get("request_id").(string)
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == "" {
		t.Error("expected a generated request id in context")
	}
	if rec.Header().Get(HeaderRequestID) != seen {
		t.Error("expected response header to echo the request id")
	}
}

func TestRequestID_InboundHeaderHonored(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error { return nil })
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get(HeaderRequestID) != "abc-123" {
		t.Errorf("expected inbound id preserved, got %s", rec.Header().Get(HeaderRequestID))
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := zerolog.New(os.Stdout)
	h := Recovery(logger)(func(c echo.Context) error {
		panic("boom")
	})
	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Code)
	}
}

func TestLogger_LevelsByStatus(t *testing.T) {
	e := echo.New()

	run := func(h echo.HandlerFunc) string {
		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		Logger(zerolog.New(&buf))(h)(c)
		return buf.String()
	}

	line := run(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if !strings.Contains(line, `"level":"info"`) || !strings.Contains(line, `"status":200`) {
		t.Errorf("expected info line for 200, got %s", line)
	}

	line = run(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	if !strings.Contains(line, `"level":"warn"`) || !strings.Contains(line, `"status":404`) {
		t.Errorf("expected warn line for 404, got %s", line)
	}

	line = run(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "broken")
	})
	if !strings.Contains(line, `"level":"error"`) || !strings.Contains(line, `"status":500`) {
		t.Errorf("expected error line for 500, got %s", line)
	}
}

func TestRateLimit_ExhaustsBurst(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	call := func() error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		return h(e.NewContext(req, rec))
	}

	if err := call(); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	if err := call(); err != nil {
		t.Fatalf("second call should pass: %v", err)
	}
	err := call()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst exhausted, got %v", err)
	}
}

func TestRateLimit_KeysPerIP(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	call := func(addr string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		return h(e.NewContext(req, rec))
	}

	if err := call("10.0.0.1:1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := call("10.0.0.2:1"); err != nil {
		t.Errorf("second IP should have its own bucket: %v", err)
	}
}
