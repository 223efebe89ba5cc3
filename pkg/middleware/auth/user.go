package auth

import (
	"context"
	"net/http"
	"slices"
)

type Role struct {
	Name string `json:"name"`
}

type AuthenticationSource struct {
	Provider string `json:"provider"`
}

type User struct {
	Username             string               `json:"username"`
	AuthenticationSource AuthenticationSource `json:"authenticationSource"`
	Role                 Role                 `json:"role"`
}

// WithUser stores u in ctx the way the middleware does.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

func (m *Middleware) GetUser(ctx context.Context) User {
	if u, ok := ctx.Value(userCtxKey).(User); ok {
		return u
	}
	return User{}
}

func (m *Middleware) IsAuthenticated(ctx context.Context) bool {
	return m.GetUser(ctx).Username != ""
}

func (m *Middleware) IsAdmin(ctx context.Context) bool {
	return m != nil && m.adminRole != "" && m.GetUser(ctx).Role.Name == m.adminRole
}

// HasAnyRole is true for admins and for users holding one of roles.
func (m *Middleware) HasAnyRole(ctx context.Context, roles ...string) bool {
	u := m.GetUser(ctx)
	if u.Username == "" {
		return false
	}
	return m.IsAdmin(ctx) || slices.Contains(roles, u.Role.Name)
}

func (m *Middleware) IsUser(ctx context.Context, usernames ...string) bool {
	u := m.GetUser(ctx)
	return u.Username != "" && (m.IsAdmin(ctx) || slices.Contains(usernames, u.Username))
}

// Dev-only user injection via headers when AUTH_DEV_BYPASS=true
func devUserFromHeaders(r *http.Request) User {
	user := r.Header.Get("X-Dev-User")
	if user == "" {
		return User{}
	}
	return User{
		Username:             user,
		AuthenticationSource: AuthenticationSource{Provider: r.Header.Get("X-Dev-Provider")},
		Role:                 Role{Name: r.Header.Get("X-Dev-Role")},
	}
}
