// Package httpkit re-exports the platform http seam for modules and adds
// API level mounting helpers, so modules never import chi or the platform package
package httpkit

import (
	"net/http"

	phttp "prlens/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Response is the return value of return-style handlers
	Response = phttp.Response
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response whose status comes from err
func Error(err error) Response { return phttp.Error(err) }

// GetJSON mounts a body-less JSON handler under GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a bound and validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}
