package structpages

import (
	"net/http"
)

// Router registers handlers for a method and path.
// Both http.ServeMux (via NewRouter) and chi (via the chirouter package) satisfy it.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

type stdRouter struct {
	mux *http.ServeMux
}

// NewRouter wraps an http.ServeMux. If mux is nil, http.DefaultServeMux is used.
func NewRouter(mux *http.ServeMux) *stdRouter {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &stdRouter{mux: mux}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.mux.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
