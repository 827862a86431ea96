package swaggerkit

import (
	"encoding/json"
	"net/http"
	"testing"

	phttp "prlens/internal/platform/net/http"
	kit "prlens/internal/platform/testkit"
)

func TestDoc_ListsEveryRoute(t *testing.T) {
	raw, err := Doc()
	if err != nil {
		t.Fatalf("Doc: %v", err)
	}
	var spec struct {
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(raw, &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, p := range []string{
		"/prs/list", "/prs/author", "/prs/repo-ids", "/prs/histogram", "/prs/velocity", "/prs/repo-stats",
		"/contributors/search", "/contributors/repo-ids", "/meta/ready",
	} {
		if _, ok := spec.Paths[p]; !ok {
			t.Errorf("path %s missing from document", p)
		}
	}
}

func TestRegister_MutatesServedDoc(t *testing.T) {
	kit.Serial(t)
	mu.Lock()
	saved := mutators
	mu.Unlock()
	t.Cleanup(func() { mu.Lock(); mutators = saved; mu.Unlock() })

	Register(nil)
	Register(func(spec map[string]any) {
		spec["info"].(map[string]any)["version"] = "9.9.9"
	})

	r := phttp.NewServer(phttp.ServerConfig{}).Router()
	Mount(r, true)

	rec := kit.Get(t, r.Mux(), "/api/docs/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json = %d", rec.Code)
	}
	doc := kit.DecodeJSON[struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}](t, rec)
	if doc.Info.Version != "9.9.9" {
		t.Fatalf("mutator not applied: %q", doc.Info.Version)
	}

	if rec := kit.Get(t, r.Mux(), "/api/docs"); rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect = %d", rec.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	r := phttp.NewServer(phttp.ServerConfig{}).Router()
	Mount(r, false)
	if rec := kit.Get(t, r.Mux(), "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs = %d", rec.Code)
	}
}
