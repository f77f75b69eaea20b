// Package sqldb implements store.Store on database/sql. The sqlite and
// postgres drivers share these repositories and differ only in their
// Dialect: placeholder style, constraint error detection and migrations.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vos-crm/crm/internal/crm/store"
)

// Dialect captures what differs between SQL backends.
type Dialect interface {
	Name() string

	// Rebind rewrites "?" placeholders into the backend's style.
	Rebind(query string) string

	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool

	// Fold wraps a column expression so it compares case-insensitively
	// against a strings.ToLower'd argument, non-ASCII letters included.
	Fold(expr string) string

	// Migrate applies the backend's embedded migrations to db.
	Migrate(db *sql.DB) error
}

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries binds a connection (or transaction) to a dialect.
type Queries struct {
	db DBTX
	d  Dialect
}

func (q *Queries) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := q.db.ExecContext(ctx, q.d.Rebind(query), args...)
	return res, q.mapErr(err)
}

func (q *Queries) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := q.db.QueryContext(ctx, q.d.Rebind(query), args...)
	return rows, q.mapErr(err)
}

func (q *Queries) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, q.d.Rebind(query), args...)
}

// execOne runs a statement that must touch exactly one row.
func (q *Queries) execOne(ctx context.Context, query string, args ...any) error {
	res, err := q.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (q *Queries) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case q.d.IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	case q.d.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", store.ErrReferenced, err)
	}
	return err
}

type Store struct {
	db *sql.DB
	q  *Queries
	d  Dialect
}

// New wraps an open database. Connection tuning is the driver's job.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, q: &Queries{db: db, d: d}, d: d}
}

// DB exposes the underlying pool, for tests and tooling.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	if err := s.d.Migrate(s.db); err != nil {
		return fmt.Errorf("%s migrations: %w", s.d.Name(), err)
	}
	return nil
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.d), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users         { return &usersRepo{q: s.q} }
func (s *Store) Customers() store.Customers { return &customersRepo{q: s.q} }
func (s *Store) Documents() store.Documents { return &documentsRepo{q: s.q} }
func (s *Store) Invites() store.Invites     { return &invitesRepo{q: s.q} }
func (s *Store) Stages() store.Stages       { return &stagesRepo{q: s.q} }
func (s *Store) Tasks() store.Tasks         { return &tasksRepo{q: s.q} }
func (s *Store) Notes() store.Notes         { return &notesRepo{q: s.q} }
func (s *Store) Layouts() store.Layouts     { return &layoutsRepo{q: s.q} }

type scanner interface {
	Scan(dest ...any) error
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// mapStringNull stores "" as NULL, used for optional foreign keys.
func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		v := nt.Time.UTC()
		return &v
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
