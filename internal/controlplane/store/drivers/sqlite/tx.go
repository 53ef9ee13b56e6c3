package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/store"
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

func (t *txStore) Close() error { return nil } // caller commits or rolls back; the DB stays open

// Ping is a no-op; the connection is held for the life of the transaction.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Profiles() store.Profiles         { return &profilesRepo{db: t.tx, now: t.now} }
func (t *txStore) Preferences() store.Preferences   { return &preferencesRepo{db: t.tx, now: t.now} }
func (t *txStore) AiRules() store.AiRules           { return &aiRulesRepo{db: t.tx, now: t.now} }
func (t *txStore) Interactions() store.Interactions { return &interactionsRepo{db: t.tx, now: t.now} }
func (t *txStore) Parameters() store.Parameters     { return &parametersRepo{db: t.tx, now: t.now} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
