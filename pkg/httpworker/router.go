package httpworker

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/handler"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-worker/pkg/transport/httpx"
)

// RouterDeps are the collaborators BuildRouter stitches together. Auth, Access
// and Metrics are optional.
type RouterDeps struct {
	Router   httpx.Router
	Auth     *auth.Middleware
	Access   *logger.Middleware
	Metrics  http.Handler
	Handlers *handler.Registry
}

// BuildRouter mounts the standard middleware stack and one endpoint per route.
// A route naming an unregistered handler is a wiring error.
func BuildRouter(routes []config.Route, d RouterDeps) (http.Handler, error) {
	r := d.Router
	if r == nil {
		r = httpx.NewChi()
	}
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	if d.Auth != nil {
		r.Use(d.Auth.Middleware())
	}
	if d.Access != nil {
		r.Use(d.Access.Middleware(d.Auth))
	}
	metrics.SetPathNormalizer(metrics.RoutePattern)
	r.Use(metrics.Collect(d.Auth))

	if d.Metrics != nil {
		r.Handle(http.MethodGet, "/metrics", d.Metrics)
	}

	var errs []error
	for _, rt := range routes {
		var h handler.Func
		var ok bool
		if d.Handlers != nil {
			h, ok = d.Handlers.Lookup(rt.Handler)
		}
		if !ok {
			errs = append(errs, fmt.Errorf("route %s %s: handler %q not registered", rt.Method, rt.Path, rt.Handler))
			continue
		}
		hf := inproc(h)
		if rt.TimeoutMS > 0 {
			hf = withTimeout(hf, time.Duration(rt.TimeoutMS)*time.Millisecond)
		}
		hf = withGuard(hf, d.Auth, rt.Guard)
		r.Handle(strings.ToUpper(rt.Method), rt.Path, hf)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r.Mux(), nil
}

func inproc(h handler.Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "read body")
			return
		}
		out, status, err := h(r.Context(), body)
		if err != nil {
			httpx.WriteError(w, httpx.StatusOr(status, http.StatusInternalServerError), err.Error())
			return
		}
		httpx.WriteJSON(w, out, httpx.StatusOr(status, http.StatusOK))
	}
}
