// Package http provides http transport for contributor cohorts
package http

import (
	stdhttp "net/http"

	"prlens/internal/modkit/httpkit"
	"prlens/internal/services/api/contributors/domain"
	svc "prlens/internal/services/api/contributors/service"
)

// Register mounts contributor endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.RepoIDsInput](r, "/repo-ids", h.byRepoIDs)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /contributors/search Contributors contributorsSearch
// @Summary Contributors of one cohort
// @Tags Contributors
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {array} cohort.Contributor "ok"
// @Failure 400 {object} net.Envelope
// @Router /contributors/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route POST /contributors/repo-ids Contributors contributorsByRepoIDs
// @Summary Contributors of one cohort across repository ids
// @Tags Contributors
// @Accept json
// @Produce json
// @Param payload body domain.RepoIDsInput true "Query"
// @Success 200 {array} cohort.Contributor "ok"
// @Failure 400 {object} net.Envelope
// @Router /contributors/repo-ids [post]
func (h *handlers) byRepoIDs(r *stdhttp.Request, in domain.RepoIDsInput) (any, error) {
	return h.svc.ByRepoIDs(r.Context(), in)
}
