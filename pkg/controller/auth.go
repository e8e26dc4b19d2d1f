package controller

import (
	"context"
	"net/http"
	"strings"

	"terms/pkg/serrors"
)

// Authenticator validates a bearer token and returns the context to continue
// the request with.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (context.Context, error)
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}

// WithBearerAuth returns a middleware that rejects requests whose bearer token
// auth does not accept.
func WithBearerAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				WriteError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				WriteError(r.Context(), w, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
