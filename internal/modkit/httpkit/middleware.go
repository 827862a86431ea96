package httpkit

import (
	"net/http"
	"time"

	"prlens/internal/platform/config"
	"prlens/internal/platform/net/middleware"
)

// StackOptions tunes the API middleware stack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
}

// StackOptionsFrom reads REQUEST_TIMEOUT, SLOW_REQUEST and CORS_ORIGINS under cfg
func StackOptionsFrom(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}
}

// CommonStack is the middleware every /api/v1 route runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
	}
	stack = append(stack, middleware.Defaults(o.Timeout, o.SlowRequest)...)
	return append(stack, middleware.AllowContentType("application/json"))
}
