package module

import (
	"context"

	"prlens/internal/core/aggregate"
	"prlens/internal/services/api/pulls/domain"
	prssvc "prlens/internal/services/api/pulls/service"
)

// Ports is what the pull request module exposes to other modules
type Ports struct {
	Query QueryPort
}

// QueryPort is the aggregate view other modules may read
type QueryPort interface {
	Velocity(ctx context.Context, in domain.VelocityInput) (domain.VelocityRow, error)
	RepoStats(ctx context.Context, in domain.RepoStatsInput) (aggregate.Stats, error)
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptQueryPort struct{ svc prssvc.Service }

// Velocity averages whole days to merge
func (a adaptQueryPort) Velocity(ctx context.Context, in domain.VelocityInput) (domain.VelocityRow, error) {
	return a.svc.Velocity(ctx, in)
}

// RepoStats summarizes one repository
func (a adaptQueryPort) RepoStats(ctx context.Context, in domain.RepoStatsInput) (aggregate.Stats, error) {
	return a.svc.RepoStats(ctx, in)
}
