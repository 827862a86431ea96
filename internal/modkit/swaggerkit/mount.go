// Package swaggerkit serves the OpenAPI document and the swagger UI
package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"

	"prlens/internal/platform/logger"
	phttp "prlens/internal/platform/net/http"
)

//go:embed openapi.json
var baseDoc []byte

// SpecMutator lets a module adjust the parsed document before it is served
type SpecMutator func(spec map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// Register adds a spec mutator, call it before Mount
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Doc returns the document with all mutators applied
func Doc() ([]byte, error) {
	var spec map[string]any
	if err := json.Unmarshal(baseDoc, &spec); err != nil {
		return nil, err
	}
	mu.Lock()
	for _, m := range mutators {
		m(spec)
	}
	mu.Unlock()
	return json.Marshal(spec)
}

// Mount serves /api/docs/doc.json and the UI under /api/docs when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	doc, err := Doc()
	if err != nil {
		logger.Named("swagger").Error().Err(err).Msg("openapi document unreadable; docs disabled")
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/index.html", http.StatusPermanentRedirect)
	})
	phttp.MountDoc(r, "/api/docs/doc.json", doc)
	phttp.MountSwagger(r, "/api/docs", "/api/docs/doc.json", true)
}
