package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.ID, error)
}

// Auth puts the id of the token's owner into the request context. A request
// with no bearer token stays anonymous; a bad token never reaches next.
func Auth(tokens tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractBearerToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := tokens.ValidateToken(r.Context(), raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, domain.KindAuthorizationRequired, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), id.String())))
		})
	}
}

// extractBearerToken returns the credentials of an Authorization header using
// the Bearer scheme, in any letter case. Other schemes yield "".
func extractBearerToken(r *http.Request) string {
	scheme, creds, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(creds)
}
