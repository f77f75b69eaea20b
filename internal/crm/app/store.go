package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/internal/crm/store/drivers/postgres"
	"github.com/vos-crm/crm/internal/crm/store/drivers/sqlite"
)

// IsPostgresURL reports whether DATABASE_URL selects the postgres driver.
func IsPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// OpenStore picks the driver from the URL, opens it and applies migrations.
// Anything that is not a postgres URL is treated as a sqlite path.
func OpenStore(ctx context.Context, url string) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	if IsPostgresURL(url) {
		st, err = postgres.NewStore(ctx, url)
	} else {
		st, err = sqlite.NewStore(strings.TrimPrefix(url, "sqlite://"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return st, nil
}

// DriverName is the driver OpenStore would pick, for logging.
func DriverName(url string) string {
	if IsPostgresURL(url) {
		return "postgres"
	}
	return "sqlite"
}
