// Package chirouter adapts a chi router to structpages.Router.
package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Router struct {
	router chi.Router
}

func New(r chi.Router) *Router {
	return &Router{router: r}
}

func (r *Router) HandleMethod(method, path string, handler http.Handler) {
	if method == "ALL" || method == "" {
		r.router.Handle(path, handler)
		return
	}
	r.router.Method(method, path, handler)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
