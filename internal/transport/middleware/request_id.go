package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quiz-backend/pkg/ctxutil"
)

// HeaderRequestID is echoed on every response.
const HeaderRequestID = "X-Request-Id"

const maxRequestIDLen = 64

// RequestID tags the request with the caller's X-Request-Id when it is a
// short token of safe characters, and with a fresh UUID otherwise.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

// validRequestID keeps client ids out of logs unless they are plain tokens.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
