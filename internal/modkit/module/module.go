// Package module defines the module contract and bootstrap port lookups.
// It sits apart from modkit so a module's ports package can import it without a cycle
package module

import phttp "prlens/internal/platform/net/http"

// Module is what the API mounts
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
