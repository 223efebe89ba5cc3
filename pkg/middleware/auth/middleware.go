package auth

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

type contextKey struct{ name string }

var userCtxKey = &contextKey{"user"}

// Middleware authenticates bearer tokens on the http worker. With no key
// configured every request passes through unauthenticated.
type Middleware struct {
	adminRole string
	devBypass bool

	secret    []byte
	publicKey *rsa.PublicKey
	issuer    string
	audience  string
	leeway    time.Duration
}

// Options configures a Middleware directly; ProvideAuthentication builds them from env.
type Options struct {
	AdminRole string
	DevBypass bool
	Secret    []byte
	PublicKey *rsa.PublicKey
	Issuer    string
	Audience  string
	Leeway    time.Duration
}

func New(o Options) *Middleware {
	return &Middleware{
		adminRole: o.AdminRole,
		devBypass: o.DevBypass,
		secret:    o.Secret,
		publicKey: o.PublicKey,
		issuer:    o.Issuer,
		audience:  o.Audience,
		leeway:    o.Leeway,
	}
}

// ProvideAuthentication wires the middleware from AUTH_* env vars.
func ProvideAuthentication() (*Middleware, error) {
	o := Options{
		AdminRole: strings.TrimSpace(os.Getenv("ADMIN_ROLE_NAME")),
		DevBypass: os.Getenv("AUTH_DEV_BYPASS") == "true",
		Secret:    []byte(os.Getenv("AUTH_JWT_SECRET")),
		Issuer:    strings.TrimSpace(os.Getenv("AUTH_JWT_ISSUER")),
		Audience:  strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		Leeway:    60 * time.Second,
	}
	if v := strings.TrimSpace(os.Getenv("AUTH_JWT_LEEWAY_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			o.Leeway = time.Duration(n) * time.Second
		}
	}
	if p := strings.TrimSpace(os.Getenv("AUTH_JWT_PUBLIC_KEY")); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("auth: read public key: %w", err)
		}
		k, err := jwt.ParseRSAPublicKeyFromPEM(b)
		if err != nil {
			return nil, fmt.Errorf("auth: parse public key: %w", err)
		}
		o.PublicKey = k
	}
	return New(o), nil
}

// Enabled reports whether a verification key is configured.
func (m *Middleware) Enabled() bool {
	return m != nil && (len(m.secret) > 0 || m.publicKey != nil)
}

var Module = fx.Options(
	fx.Provide(ProvideAuthentication),
)
