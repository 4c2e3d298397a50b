package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/transport"

	"github.com/heartmarshall/quiz-backend/internal/config"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/executor"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/resolver"
)

// NewServer builds the GraphQL HTTP handler for res.
func NewServer(log *slog.Logger, res *resolver.Resolver, cfg config.GraphQLConfig, production bool) (*handler.Server, error) {
	schema, err := LoadSchema()
	if err != nil {
		return nil, err
	}

	es, err := executor.New(schema, res.Resolvers())
	if err != nil {
		return nil, fmt.Errorf("graphql.NewServer: %w", err)
	}

	srv := handler.New(es)
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	if cfg.Introspection {
		srv.Use(extension.Introspection{})
	}
	srv.SetErrorPresenter(NewErrorPresenter(log, production))
	srv.SetRecoverFunc(newRecoverFunc(log))

	return srv, nil
}

var errResolverPanic = errors.New("internal system error")

func newRecoverFunc(log *slog.Logger) graphql.RecoverFunc {
	return func(ctx context.Context, p any) error {
		log.ErrorContext(ctx, "panic in resolver",
			slog.Any("panic", p),
			slog.String("path", graphql.GetPath(ctx).String()),
		)
		return errResolverPanic
	}
}
