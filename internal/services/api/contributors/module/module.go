// Package module wires contributor cohorts into the API using modkit
package module

import (
	"context"

	"prlens/internal/core/cohort"
	"prlens/internal/core/page"
	modkit "prlens/internal/modkit"
	"prlens/internal/modkit/httpkit"
	pstrings "prlens/internal/platform/strings"
	"prlens/internal/services/api/contributors/domain"
	cohttp "prlens/internal/services/api/contributors/http"
	cosvc "prlens/internal/services/api/contributors/service"
)

// Module implements the contributor module
type Module struct {
	b   modkit.Built
	svc cosvc.Service
}

// New constructs the contributor module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("contributors"), modkit.WithPrefix("/contributors")}, opts...)...)
	return &Module{b: b, svc: cosvc.New(deps.MustEngine())}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { cohttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return pstrings.MustString(m.b.Name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return adaptCohortPort{svc: m.svc} }

// CohortPort classifies contributors for other modules
type CohortPort interface {
	Search(ctx context.Context, in domain.SearchInput) (page.Result[cohort.Contributor], error)
}

type adaptCohortPort struct{ svc cosvc.Service }

// Search pages the contributors of one cohort
func (a adaptCohortPort) Search(ctx context.Context, in domain.SearchInput) (page.Result[cohort.Contributor], error) {
	return a.svc.Search(ctx, in)
}
