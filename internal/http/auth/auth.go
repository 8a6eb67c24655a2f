// Package auth identifies the caller of an API request. Bearer tokens are
// verified against the identity provider's shared secret; without a secret
// the X-User-ID header is trusted as-is.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/tally/internal/http/render"
)

const HeaderUserID = "X-User-ID"

var (
	ErrMissingIdentity = errors.New("missing caller identity")
	ErrInvalidToken    = errors.New("invalid token")
)

type ctxKey struct{}

// Owner returns the caller stored by the middleware, or "" outside it.
func Owner(ctx context.Context) string {
	owner, _ := ctx.Value(ctxKey{}).(string)
	return owner
}

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ctxKey{}, owner)
}

type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Identify returns the token subject, or the X-User-ID header when no secret
// is configured.
func (v *Verifier) Identify(r *http.Request) (string, error) {
	if len(v.secret) == 0 {
		if owner := strings.TrimSpace(r.Header.Get(HeaderUserID)); owner != "" {
			return owner, nil
		}

		return "", ErrMissingIdentity
	}

	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		return "", ErrMissingIdentity
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := new(jwt.RegisteredClaims)

	token, err := jwt.NewParser(opts...).ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner, err := v.Identify(r)
		if err != nil {
			render.JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), owner)))
	})
}
