package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/inkwell/pkg/slogx"
)

// Authenticator turns a raw bearer token into a request context carrying the
// authenticated principal. Any error rejects the request with 401.
type Authenticator func(ctx context.Context, token string) (context.Context, error)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthnMiddleware requires a bearer token and lets authn resolve it.
func AuthnMiddleware(authn Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				WriteBearerError(w, "missing bearer token")
				return
			}

			authed, err := authn(ctx, raw)
			if err != nil {
				log.Warn("bearer authentication failed", "err", err)
				WriteBearerError(w, "could not validate credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(authed))
		})
	}
}

// WriteBearerError writes an RFC 6750 invalid_token challenge.
func WriteBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthenticated",
		"error_description": desc,
	})
}
