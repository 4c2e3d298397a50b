package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager scopes repository calls to a single transaction.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx calls fn with a context bound to a transaction. The transaction
// commits when fn returns nil and rolls back on an error or a panic.
//
// Called with a context that already carries a transaction, RunInTx opens a
// savepoint instead: an error from fn undoes only its own writes and the
// outer transaction decides the final outcome.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	var begin interface {
		Begin(context.Context) (pgx.Tx, error)
	} = m.pool
	if outer, ok := txFromCtx(ctx); ok {
		begin = outer
	}

	return pgx.BeginFunc(ctx, begin, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
