package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-store-admin/internal/platform/logger"
)

func captureLogger(t *testing.T) (logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf}), &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestEchoRequestID_GenerateAndPropagate(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(EchoRequestID)
	r.Get("/rid", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rid", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected generated %s header", RequestIDHeader)
	}

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w2, req)
	if got := w2.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestAccessLog_LevelsByStatus(t *testing.T) {
	log, buf := captureLogger(t)

	r := chi.NewRouter()
	r.Use(AccessLog(log))
	r.Get("/ok/{id}", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Get("/missing", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) })

	for _, p := range []string{"/ok/7", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	lines := logLines(t, buf)
	if len(lines) != 3 {
		t.Fatalf("expected 3 access log lines, got %d: %s", len(lines), buf.String())
	}
	want := []struct {
		level  string
		status float64
	}{{"info", 200}, {"warn", 404}, {"error", 502}}
	for i, w := range want {
		if lines[i]["level"] != w.level || lines[i]["status"] != w.status {
			t.Fatalf("line %d: expected %s/%v, got %v", i, w.level, w.status, lines[i])
		}
	}
	if lines[0]["route"] != "/ok/{id}" {
		t.Fatalf("expected route pattern, got %v", lines[0]["route"])
	}
}

func TestRecover_LogsAndReturns500(t *testing.T) {
	log, buf := captureLogger(t)

	r := chi.NewRouter()
	r.Use(Recover(log))
	r.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "internal error") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
	lines := logLines(t, buf)
	if len(lines) != 1 || lines[0]["panic"] != "kaboom" {
		t.Fatalf("expected panic logged, got %s", buf.String())
	}
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	m := NewMetrics()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Method(http.MethodGet, "/metrics", m.Handler())

	for _, p := range []string{"/pets/1", "/pets/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)

	for _, want := range []string{
		`http_requests_total{method="GET",path="/pets/{petID}",status="204"} 2`,
		`http_requests_total{method="GET",path="unmatched",status="404"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("missing %q in metrics:\n%s", want, body)
		}
	}
}
