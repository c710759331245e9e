package sqliterepo

import (
	"context"
	"database/sql"
)

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// executor is the subset of *sql.DB and *sql.Tx the repos need, so queries
// transparently join an open transaction carried in the context.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func execFromCtx(ctx context.Context, base *sql.DB) executor {
	if v := ctx.Value(txKey); v != nil {
		if tx, ok := v.(*sql.Tx); ok && tx != nil {
			return tx
		}
	}
	return base
}
