// Package httpx is the routing surface the http worker builds on.
package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the minimal HTTP router contract the http worker depends on.
type Router interface {
	Handle(method, path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Mux() http.Handler
}

type chiRouter struct{ r *chi.Mux }

// NewChi returns a chi-backed Router. Unknown paths and methods answer with
// JSON bodies so clients see the same envelope as handler errors.
func NewChi() Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return &chiRouter{r: r}
}

func (c *chiRouter) Handle(method, path string, h http.Handler) { c.r.Method(method, path, h) }
func (c *chiRouter) Use(mw ...func(http.Handler) http.Handler)  { c.r.Use(mw...) }
func (c *chiRouter) Mux() http.Handler                          { return c.r }
