// Package version reports the build stamped into the binary
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service
//
//	go build -ldflags "-X 'prlens/internal/core/version.version=v0.1.0' -X 'prlens/internal/core/version.commit=abcd'"
func Info(service string) BuildInfo {
	if service == "" {
		service = "prlens"
	}
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
