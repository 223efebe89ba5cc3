package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	Role     string `json:"role"`
	Provider string `json:"provider"`
}

func (m *Middleware) validateToken(raw string) (User, error) {
	var methods []string
	var key any
	switch {
	case m.publicKey != nil:
		methods, key = []string{"RS256"}, m.publicKey
	case len(m.secret) > 0:
		methods, key = []string{"HS256"}, m.secret
	default:
		return User{}, errors.New("auth: no verification key configured")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(m.leeway),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}

	var c claims
	tok, err := jwt.NewParser(opts...).ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil || !tok.Valid {
		return User{}, errors.New("auth: invalid token")
	}

	username := c.Subject
	if username == "" {
		username = c.Name
	}
	if username == "" {
		return User{}, errors.New("auth: token has no subject")
	}
	prov := c.Provider
	if prov == "" {
		prov = "jwt"
	}
	return User{
		Username:             username,
		AuthenticationSource: AuthenticationSource{Provider: prov},
		Role:                 Role{Name: c.Role},
	}, nil
}
