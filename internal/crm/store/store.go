package store

import (
	"context"
	"errors"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrReferenced is returned when a foreign key would be violated.
	ErrReferenced = errors.New("store: referenced record missing or in use")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement it over the same SQL. Sub-repositories are methods so a Tx can
// hand out the same repositories bound to the transaction.
type Store interface {
	Users() Users
	Customers() Customers
	Documents() Documents
	Invites() Invites
	Stages() Stages
	Tasks() Tasks
	Notes() Notes
	Layouts() Layouts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. It commits when fn returns nil
	// and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up by the normalised (lower-case) address.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser writes name, role, customer link and password hash, and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// ListUsers returns every account ordered by name.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// CustomerSortColumns is the sort whitelist: API field name to column.
var CustomerSortColumns = map[string]string{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"lastActivity": "last_activity",
	"firstName":    "first_name",
	"lastName":     "last_name",
	"companyName":  "company_name",
	"email":        "email",
	"city":         "city",
	"status":       "status",
}

// CustomerFilter drives the paginated customer list. Sort must be a key of
// CustomerSortColumns.
type CustomerFilter struct {
	Query  string // case-insensitive substring over name, company, email and city
	Status string
	Type   domain.CustomerType
	Sort   string
	Desc   bool
	Limit  int
	Offset int
}

type Customers interface {
	// CreateCustomer returns ErrAlreadyExists when the email is taken.
	CreateCustomer(ctx context.Context, c domain.Customer) error

	GetCustomerByID(ctx context.Context, id string) (domain.Customer, error)

	// UpdateCustomer overwrites every mutable column.
	UpdateCustomer(ctx context.Context, c domain.Customer) error

	// DeleteCustomer cascades to documents and notes; tasks are unlinked.
	DeleteCustomer(ctx context.Context, id string) error

	// ListCustomers returns one page and the total number of matches.
	ListCustomers(ctx context.Context, f CustomerFilter) ([]domain.Customer, int, error)

	// ListCustomersAfter is the keyset cursor used by the export: ids
	// strictly greater than afterID, ascending, at most limit rows.
	ListCustomersAfter(ctx context.Context, afterID string, limit int) ([]domain.Customer, error)

	CountCustomers(ctx context.Context) (int, error)

	// CountCustomersByStatus counts customers sitting in a pipeline stage.
	CountCustomersByStatus(ctx context.Context, status string) (int, error)

	// TouchCustomer sets last_activity.
	TouchCustomer(ctx context.Context, id string, at time.Time) error
}

type Documents interface {
	CreateDocument(ctx context.Context, d domain.Document) error
	GetDocumentByID(ctx context.Context, id string) (domain.Document, error)

	// ListDocuments returns newest first. An empty customerID lists all.
	ListDocuments(ctx context.Context, customerID string) ([]domain.Document, error)

	DeleteDocument(ctx context.Context, id string) error
}

type Invites interface {
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByTokenHash returns the invite whatever its state; callers
	// decide usability.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// MarkInviteUsed sets used_at only if it is still NULL. It returns
	// ErrNotFound when no row changed, which is how a concurrent redemption
	// of the same token loses.
	MarkInviteUsed(ctx context.Context, inviteID string, at time.Time) error

	// DeleteExpiredInvites removes invites that expired before the cutoff.
	DeleteExpiredInvites(ctx context.Context, before time.Time) (int64, error)
}

type Stages interface {
	// ListStages returns stages ordered by position.
	ListStages(ctx context.Context) ([]domain.Stage, error)

	// ReplaceStages swaps the whole set. Run it inside a transaction.
	ReplaceStages(ctx context.Context, stages []domain.Stage) error
}

// TaskFilter narrows ListTasks. Empty fields do not filter.
type TaskFilter struct {
	CustomerID string
	AssignedTo string
	Status     domain.TaskStatus
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)
	UpdateTask(ctx context.Context, t domain.Task) error
	DeleteTask(ctx context.Context, id string) error

	// ListTasks orders by deadline (nulls last) then newest first.
	ListTasks(ctx context.Context, f TaskFilter) ([]domain.Task, error)
}

type Notes interface {
	CreateNote(ctx context.Context, n domain.Note) error
	GetNoteByID(ctx context.Context, id string) (domain.Note, error)
	DeleteNote(ctx context.Context, id string) error

	// ListNotes returns newest first. An empty customerID lists all.
	ListNotes(ctx context.Context, customerID string) ([]domain.Note, error)
}

type Layouts interface {
	GetLayout(ctx context.Context, userID string) (domain.DashboardLayout, error)

	// SaveLayout upserts the layout for its user.
	SaveLayout(ctx context.Context, l domain.DashboardLayout) error
}
