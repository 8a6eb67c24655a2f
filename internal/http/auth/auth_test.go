package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/http/auth"
)

func sign(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return s
}

func TestVerifier_Middleware(t *testing.T) {
	const secret = "s3cret"

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	type testCase struct {
		name       string
		verifier   *auth.Verifier
		header     func(t *testing.T, h http.Header)
		wantStatus int
		wantOwner  string
	}

	tests := []testCase{
		{
			name:     "HeaderWithoutSecret",
			verifier: auth.NewVerifier("", ""),
			header: func(_ *testing.T, h http.Header) {
				h.Set(auth.HeaderUserID, "u1")
			},
			wantStatus: http.StatusOK,
			wantOwner:  "u1",
		},
		{
			name:       "MissingHeader",
			verifier:   auth.NewVerifier("", ""),
			header:     func(*testing.T, http.Header) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "ValidToken",
			verifier: auth.NewVerifier(secret, "idp"),
			header: func(t *testing.T, h http.Header) {
				h.Set("Authorization", "Bearer "+sign(t, secret, jwt.RegisteredClaims{
					Subject: "u2", Issuer: "idp", ExpiresAt: future,
				}))
			},
			wantStatus: http.StatusOK,
			wantOwner:  "u2",
		},
		{
			name:     "HeaderIgnoredWhenSecretSet",
			verifier: auth.NewVerifier(secret, ""),
			header: func(_ *testing.T, h http.Header) {
				h.Set(auth.HeaderUserID, "u1")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "WrongSecret",
			verifier: auth.NewVerifier(secret, ""),
			header: func(t *testing.T, h http.Header) {
				h.Set("Authorization", "Bearer "+sign(t, "other", jwt.RegisteredClaims{Subject: "u2", ExpiresAt: future}))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "WrongIssuer",
			verifier: auth.NewVerifier(secret, "idp"),
			header: func(t *testing.T, h http.Header) {
				h.Set("Authorization", "Bearer "+sign(t, secret, jwt.RegisteredClaims{
					Subject: "u2", Issuer: "elsewhere", ExpiresAt: future,
				}))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "Expired",
			verifier: auth.NewVerifier(secret, ""),
			header: func(t *testing.T, h http.Header) {
				h.Set("Authorization", "Bearer "+sign(t, secret, jwt.RegisteredClaims{
					Subject: "u2", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				}))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOwner string

			h := tt.verifier.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotOwner = auth.Owner(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.header(t, req.Header)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOwner, gotOwner)
		})
	}
}
