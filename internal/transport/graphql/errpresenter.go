package graphql

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes. Unexpected errors are logged and hidden from the
// client; outside production the log carries the full error chain and the
// stack of the presenting goroutine.
func NewErrorPresenter(log *slog.Logger, production bool) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// Errors raised by gqlgen itself (parsing, validation) wrap nothing
		// and keep their message.
		var ge *gqlerror.Error
		if errors.As(err, &ge) && ge.Err == nil {
			return gqlErr
		}

		kind := domain.KindOf(err)
		ext := map[string]any{
			"code": kind.Code,
			"name": kind.Name,
		}
		if reason := domain.ReasonOf(err); reason != "" {
			ext["reason"] = reason
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			ext["fields"] = ve.Errors
		}

		if kind == domain.KindInternal {
			requestID := ctxutil.RequestIDFromCtx(ctx)
			attrs := []any{
				slog.String("error", err.Error()),
				slog.String("request_id", requestID),
				slog.String("path", gqlErr.Path.String()),
			}
			if !production {
				attrs = append(attrs,
					slog.Any("chain", errorChain(err)),
					slog.String("stack", string(debug.Stack())),
				)
			}
			log.ErrorContext(ctx, "unexpected GraphQL error", attrs...)
			gqlErr.Message = "internal error"
		}

		gqlErr.Extensions = ext
		return gqlErr
	}
}

// errorChain lists the messages of every wrapped error, outermost first.
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				chain = append(chain, errorChain(e)...)
			}
			return chain
		default:
			err = errors.Unwrap(err)
		}
	}
	return chain
}
