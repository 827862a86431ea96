package http

import (
	"encoding/json"
	stdhttp "net/http"

	"prlens/internal/platform/logger"
	pnet "prlens/internal/platform/net"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("encode response")
	}
}

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, pnet.OK(stdhttp.StatusOK, data, pnet.RequestID(r.Context())))
}

// RespondError maps err to a status and envelope; 5xx causes are logged
// since the envelope only carries the message
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	env := pnet.Error(err, pnet.RequestID(r.Context()))
	if env.StatusCode >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Int("status", env.StatusCode).Msg("request failed")
	}
	JSON(w, env.StatusCode, env)
}

// Response is the return value of return-style handlers
type Response struct {
	Status int
	Body   any
	Err    error
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response whose status comes from err
func Error(err error) Response { return Response{Err: err} }

// Handle adapts a Response returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		if resp.Err != nil {
			RespondError(w, r, resp.Err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		JSON(w, status, pnet.OK(status, resp.Body, pnet.RequestID(r.Context())))
	}
}
