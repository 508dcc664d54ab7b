package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/store"
)

type txStore struct {
	tx  *sql.Tx
	now func() time.Time
}

func newTx(tx *sql.Tx, now func() time.Time) *txStore {
	return &txStore{tx: tx, now: now}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer Store owns the connection.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Tx and WithTx reject nesting with sql.ErrTxDone.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Accounts() store.Accounts { return &accountsRepo{db: t.tx, now: t.now} }
func (t *txStore) Posts() store.Posts       { return &postsRepo{db: t.tx, now: t.now} }

func (t *txStore) ApplyMigrations() error { return nil }
