package http

import (
	"net/http"

	"prlens/internal/platform/net/http/bind"
)

// result turns a handler's return pair into a Response
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	return OK(out)
}

// JSONHandler decodes and validates a T from the body before calling fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn and wraps its result, the body is never read
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// PostJSON routes POST path to a bound JSONHandler
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(h))
}

// GetJSON routes GET path to a JSONHandlerNoBody
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}
