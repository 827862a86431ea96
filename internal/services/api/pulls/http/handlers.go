// Package http provides http transport for pull request queries
package http

import (
	stdhttp "net/http"

	"prlens/internal/modkit/httpkit"
	"prlens/internal/services/api/pulls/domain"
	svc "prlens/internal/services/api/pulls/service"
)

// Register mounts pull request endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// listings
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.AuthorInput](r, "/author", h.byAuthor)
	httpkit.PostJSON[domain.RepoIDsInput](r, "/repo-ids", h.byRepoIDs)

	// aggregates
	httpkit.PostJSON[domain.HistogramInput](r, "/histogram", h.histogram)
	httpkit.PostJSON[domain.VelocityInput](r, "/velocity", h.velocity)
	httpkit.PostJSON[domain.RepoStatsInput](r, "/repo-stats", h.repoStats)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /prs/list PullRequests prsList
// @Summary Current state of matching pull requests
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} prevent.State "ok"
// @Failure 400 {object} net.Envelope
// @Router /prs/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /prs/author PullRequests prsByAuthor
// @Summary Pull requests of one contributor
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param payload body domain.AuthorInput true "Query"
// @Success 200 {array} prevent.State "ok"
// @Failure 400 {object} net.Envelope
// @Router /prs/author [post]
func (h *handlers) byAuthor(r *stdhttp.Request, in domain.AuthorInput) (any, error) {
	return h.svc.ByAuthor(r.Context(), in)
}

// swagger:route POST /prs/repo-ids PullRequests prsByRepoIDs
// @Summary Pull requests of a set of repository ids
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param payload body domain.RepoIDsInput true "Query"
// @Success 200 {array} prevent.State "ok"
// @Failure 400 {object} net.Envelope
// @Router /prs/repo-ids [post]
func (h *handlers) byRepoIDs(r *stdhttp.Request, in domain.RepoIDsInput) (any, error) {
	return h.svc.ByRepoIDs(r.Context(), in)
}

// swagger:route POST /prs/histogram PullRequests prsHistogram
// @Summary Day buckets of matching pull requests
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param payload body domain.HistogramInput true "Query"
// @Success 200 {array} aggregate.Bucket "ok"
// @Failure 400 {object} net.Envelope
// @Router /prs/histogram [post]
func (h *handlers) histogram(r *stdhttp.Request, in domain.HistogramInput) (any, error) {
	return h.svc.Histogram(r.Context(), in)
}

// swagger:route POST /prs/velocity PullRequests prsVelocity
// @Summary Average days to merge
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param payload body domain.VelocityInput true "Query"
// @Success 200 {object} domain.VelocityRow "ok"
// @Router /prs/velocity [post]
func (h *handlers) velocity(r *stdhttp.Request, in domain.VelocityInput) (any, error) {
	return h.svc.Velocity(r.Context(), in)
}

// swagger:route POST /prs/repo-stats PullRequests prsRepoStats
// @Summary Summary counts of one repository
// @Tags PullRequests
// @Accept json
// @Produce json
// @Param payload body domain.RepoStatsInput true "Query"
// @Success 200 {object} aggregate.Stats "ok"
// @Failure 404 {object} net.Envelope
// @Router /prs/repo-stats [post]
func (h *handlers) repoStats(r *stdhttp.Request, in domain.RepoStatsInput) (any, error) {
	return h.svc.RepoStats(r.Context(), in)
}
