package middleware

import (
	"net/http"
	"runtime/debug"

	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/logger"
	pnet "prlens/internal/platform/net"
	phttp "prlens/internal/platform/net/http"
)

// RecoverJSON turns a panic into the standard 500 envelope and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.JSON(w, http.StatusInternalServerError, pnet.Error(perr.PanicErrf("internal error"), reqID))
		}()
		next.ServeHTTP(w, r)
	})
}
