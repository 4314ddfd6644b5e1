package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiroBartanus/business-days-sk/internal/logger"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeObserver struct{ got []recordedRequest }

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, recordedRequest{method, route, status})
}

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger.Init()
	router.Use(RequestID())
	router.Use(RequestLogger(nil))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

func TestRequestLogger_ObservesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &fakeObserver{}
	router := gin.New()
	router.Use(RequestLogger(obs))
	router.GET("/days/:date", func(c *gin.Context) { c.String(http.StatusOK, c.Param("date")) })

	for _, path := range []string{"/days/2019-04-19", "/days/2019-04-22", "/nope"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	want := []recordedRequest{
		{http.MethodGet, "/days/:date", http.StatusOK},
		{http.MethodGet, "/days/:date", http.StatusOK},
		{http.MethodGet, "", http.StatusNotFound},
	}
	if len(obs.got) != len(want) {
		t.Fatalf("observed %d requests, want %d", len(obs.got), len(want))
	}
	for i := range want {
		if obs.got[i] != want[i] {
			t.Fatalf("request %d: got %+v want %+v", i, obs.got[i], want[i])
		}
	}
}

func TestRequestLogger_WritesJSONLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_PRETTY", "false")
	var buf bytes.Buffer
	logger.InitWithWriter(&buf)
	t.Cleanup(logger.Init)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("hello"))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("invalid json log %q: %v", line, err)
	}
	if entry["component"] != "http" || entry["route"] != "/echo" || entry["request_id"] != w.Header().Get("X-Request-ID") {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
