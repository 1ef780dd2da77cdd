package service

import (
	"context"

	"go-gin-booking/internal/database"
	apperrors "go-gin-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

// inTx runs fn in a transaction and commits when fn succeeds. The deferred
// rollback releases the connection on every path and is a no-op after commit.
// Every failure comes back as a PersistenceError tagged with op.
func inTx(ctx context.Context, db database.TxBeginner, op string, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperrors.Persistence(op, err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return apperrors.Persistence(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.Persistence(op, err)
	}

	return nil
}
