package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/logger"
	pnet "prlens/internal/platform/net"
	kit "prlens/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

var logBuf bytes.Buffer

func init() {
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: &logBuf})
}

func router(mws ...func(http.Handler) http.Handler) *chi.Mux {
	m := chi.NewRouter()
	m.Use(mws...)
	m.Post("/api/v1/prs/{op}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})
	m.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })
	m.Get("/rid", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pnet.RequestID(r.Context())))
	})
	return m
}

func TestAccessLog_RoutePatternAndStatus(t *testing.T) {
	h := router(RequestID(), AccessLog(AccessLogOptions{Slow: time.Hour}))
	logBuf.Reset()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prs/list", nil)
	req.Header.Set("X-Request-ID", "rid-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := logBuf.String()
	kit.MustContain(t, out, `"route":"/api/v1/prs/{op}"`)
	kit.MustContain(t, out, `"status":418`)
	kit.MustContain(t, out, `"bytes":15`)
	kit.MustContain(t, out, `"request_id":"rid-42"`)
	kit.MustContain(t, out, `"level":"info"`)
}

func TestAccessLog_SlowIsWarn(t *testing.T) {
	h := router(AccessLog(AccessLogOptions{Slow: time.Nanosecond}))
	logBuf.Reset()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/prs/velocity", nil))
	kit.MustContain(t, logBuf.String(), `"level":"warn"`)
}

func TestRecoverJSON(t *testing.T) {
	h := router(RequestID(), RecoverJSON)
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "rid-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError || rec.Header().Get("X-Request-ID") != "rid-7" {
		t.Fatalf("got %d hdr=%q", rec.Code, rec.Header().Get("X-Request-ID"))
	}
	env := kit.DecodeJSON[pnet.Envelope](t, rec)
	if env.Code != perr.ErrorCodePanic || env.RequestID != "rid-7" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestDefaults_StackServes(t *testing.T) {
	h := router(Defaults(time.Second, time.Hour)...)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rid", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Fatalf("request id not generated: %d %q", rec.Code, rec.Body.String())
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := router(CORS(CORSOptions{AllowedOrigins: []string{"https://app.example"}}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/prs/list", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestHeartbeat(t *testing.T) {
	h := router(Heartbeat("/ping"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat = %d", rec.Code)
	}
}
