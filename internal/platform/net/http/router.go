// Package http is the transport layer: a Router seam over chi, JSON
// envelopes, body binding and the server lifecycle
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the function shape every route is registered with
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against; it never exposes chi
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux is the root handler to serve or to drive from tests
	Mux() http.Handler
}

// AdaptChi wraps a chi router, the root mux or any subrouter
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

type chiRouter struct{ r chi.Router }

func (c chiRouter) Get(p string, h Handler)  { c.r.Get(p, h) }
func (c chiRouter) Post(p string, h Handler) { c.r.Post(p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }
func (c chiRouter) Mux() http.Handler                         { return c.r }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(AdaptChi(sub)) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(AdaptChi(sub)) })
}
