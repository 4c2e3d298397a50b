package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/heartmarshall/quiz-backend/pkg/ctxutil"
)

// Logger writes one access log line per request. Server errors log at
// Error, client errors at Warn. Requests to quietPaths (probes, metrics
// scrapes) log at Debug.
func Logger(logger *slog.Logger, quietPaths ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if ip, ok := ctxutil.ClientIPFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("client_ip", ip.String()))
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID))
			}

			logger.LogAttrs(ctx, accessLevel(sw.status, slices.Contains(quietPaths, r.URL.Path)), "http.request", attrs...)
		})
	}
}

func accessLevel(status int, quiet bool) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case quiet:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
