// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "prlens/internal/modkit"
	"prlens/internal/modkit/httpkit"
	pstrings "prlens/internal/platform/strings"
	metahttp "prlens/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	md := metahttp.Deps{
		ServiceName: "prlens-api",
		StartedAt:   time.Now(),
		EventSource: deps.Cfg.MayEnum("EVENT_SOURCE", "ch", "ch", "pg"),
	}
	if deps.Store != nil {
		if deps.Store.PG != nil {
			md.PG = deps.Store.PG
		}
		if deps.Store.CH != nil {
			md.CH = deps.Store.CH
		}
	}
	return &Module{b: b, deps: md}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return pstrings.MustString(m.b.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
