package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// fakeTx records how a transaction ended. Methods not overridden panic via
// the nil embedded interface, so repositories must be mocked.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (db *fakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}
