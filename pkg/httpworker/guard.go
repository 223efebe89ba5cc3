package httpworker

import (
	"context"
	"net/http"
	"time"

	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-worker/pkg/transport/httpx"
)

func withTimeout(next http.HandlerFunc, d time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

// withGuard enforces a route's auth requirements. Users are checked before
// roles; admins pass either check.
func withGuard(next http.HandlerFunc, a *auth.Middleware, g config.Guard) http.HandlerFunc {
	restricted := g.RequireAuth || len(g.Users) > 0 || len(g.Roles) > 0
	if !restricted {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if a == nil || !a.IsAuthenticated(ctx) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		switch {
		case len(g.Users) > 0 && !a.IsUser(ctx, g.Users...):
			httpx.WriteError(w, http.StatusForbidden, "forbidden")
		case len(g.Users) == 0 && len(g.Roles) > 0 && !a.HasAnyRole(ctx, g.Roles...):
			httpx.WriteError(w, http.StatusForbidden, "forbidden")
		default:
			next(w, r)
		}
	}
}
