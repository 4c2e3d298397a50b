package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// sqlstates maps the SQLSTATE codes repositories expect to domain kinds.
var sqlstates = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
}

// MapError prefixes err with the entity and id and translates pgx failures
// into domain kinds. Context errors are kept as they are.
func MapError(err error, entity string, id domain.ID) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, id, translate(err))
}

func translate(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind, ok := sqlstates[pgErr.Code]; ok {
			return kind
		}
	}
	return err
}

// Conflicts names the error reported when a given unique index rejects a
// write, e.g. "categories_name_live_key" to ErrCategoryNameTaken.
type Conflicts map[string]error

// Map is MapError with named errors for the known unique indexes.
func (c Conflicts) Map(err error, entity string, id domain.ID) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if named, ok := c[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%s %s: %w", entity, id, named)
		}
	}
	return MapError(err, entity, id)
}
