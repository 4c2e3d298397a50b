package dataloader

import (
	"context"
	"net/http"
)

type loadersKey struct{}

// Middleware attaches fresh loaders to every request it sees.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(repos))))
		})
	}
}

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, l)
}

// FromContext returns the request's loaders. It panics when Middleware did
// not run for the request, which is a wiring bug.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey{}).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: no loaders in context")
	}
	return l
}
