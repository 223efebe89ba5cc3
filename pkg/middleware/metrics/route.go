package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RoutePattern labels a request by its matched chi route pattern
// ("/items/{id}"), keeping the uri label bounded. Requests served outside a
// chi router keep their raw path; chi requests that matched no route share
// one "unmatched" label.
func RoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return "unmatched"
}
