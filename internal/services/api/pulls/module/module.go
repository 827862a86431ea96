// Package module wires pull request queries into the API using modkit
package module

import (
	modkit "prlens/internal/modkit"
	"prlens/internal/modkit/httpkit"
	pstrings "prlens/internal/platform/strings"
	prshttp "prlens/internal/services/api/pulls/http"
	prssvc "prlens/internal/services/api/pulls/service"
)

// Module implements the pull request module
type Module struct {
	b     modkit.Built
	svc   prssvc.Service
	ports Ports
}

// New constructs the pull request module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("prs"), modkit.WithPrefix("/prs")}, opts...)...)

	svc := prssvc.New(deps.MustEngine())
	deps.Logger("prs").Debug().Str("prefix", b.Prefix).Msg("module built")

	return &Module{b: b, svc: svc, ports: Ports{Query: adaptQueryPort{svc: svc}}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { prshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return pstrings.MustString(m.b.Name, "module name") }
