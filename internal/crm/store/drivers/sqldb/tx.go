package sqldb

import (
	"context"
	"database/sql"

	"github.com/vos-crm/crm/internal/crm/store"
)

type txStore struct {
	tx *sql.Tx
	q  *Queries
}

func newTx(tx *sql.Tx, d Dialect) *txStore {
	return &txStore{tx: tx, q: &Queries{db: tx, d: d}}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the owner commits or rolls back and the pool stays open.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations run before any transaction.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users         { return &usersRepo{q: t.q} }
func (t *txStore) Customers() store.Customers { return &customersRepo{q: t.q} }
func (t *txStore) Documents() store.Documents { return &documentsRepo{q: t.q} }
func (t *txStore) Invites() store.Invites     { return &invitesRepo{q: t.q} }
func (t *txStore) Stages() store.Stages       { return &stagesRepo{q: t.q} }
func (t *txStore) Tasks() store.Tasks         { return &tasksRepo{q: t.q} }
func (t *txStore) Notes() store.Notes         { return &notesRepo{q: t.q} }
func (t *txStore) Layouts() store.Layouts     { return &layoutsRepo{q: t.q} }
