package http

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountDoc serves a prebuilt OpenAPI document at path
func MountDoc(r Router, path string, doc []byte) {
	r.Get(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(doc)
	})
}

// MountSwagger serves the swagger UI below prefix, pointed at docURL
func MountSwagger(r Router, prefix, docURL string, enabled bool) {
	if enabled {
		r.Handle(prefix+"/*", httpSwagger.Handler(httpSwagger.URL(docURL)))
	}
}

// MountProfiler serves net/http/pprof below prefix, e.g. /debug
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := http.StripPrefix(prefix, chimw.Profiler())
	for _, p := range []string{prefix, prefix + "/*"} {
		r.Handle(p, h)
	}
}
