package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobsearch-api/internal/config"
	"github.com/phrazzld/jobsearch-api/internal/platform/database"
)

const (
	EnvDatabaseURL     = "DATABASE_URL"
	EnvTestDatabaseURL = "JOBSEARCH_TEST_DB_URL"
)

// Timeout bounds setup and teardown work against the database.
const Timeout = 10 * time.Second

var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// IsCI reports whether the process runs under a known CI provider.
func IsCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// DatabaseURL returns the first non-empty Postgres URL from the environment.
func DatabaseURL() string {
	for _, v := range []string{EnvDatabaseURL, EnvTestDatabaseURL} {
		if url := os.Getenv(v); url != "" {
			return url
		}
	}
	return ""
}

// OpenSQLite returns a migrated in-memory SQLite database closed on cleanup.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()
	return open(t, config.DatabaseConfig{Driver: database.DriverSQLite, URL: ":memory:"})
}

// OpenPostgres returns a migrated PostgreSQL database. All migrations are
// rolled back on cleanup, so the target must be disposable.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()

	url := DatabaseURL()
	if url == "" {
		if IsCI() {
			t.Fatalf("%s must be set in CI", EnvDatabaseURL)
		}
		t.Skipf("%s not set", EnvDatabaseURL)
	}
	return open(t, config.DatabaseConfig{Driver: database.DriverPostgres, URL: url})
}

func open(t *testing.T, cfg config.DatabaseConfig) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	db, err := database.Open(ctx, cfg, nil)
	require.NoError(t, err, "open %s database", cfg.Driver)

	m, err := database.NewMigrator(db, cfg.Driver, nil)
	require.NoError(t, err)
	require.NoError(t, m.Up(ctx), "apply migrations")

	t.Cleanup(func() {
		defer db.Close()
		if cfg.Driver != database.DriverPostgres {
			return
		}
		if err := resetSchema(m); err != nil {
			t.Logf("reset schema: %v", err)
		}
	})
	return db
}

func resetSchema(m *database.Migrator) error {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	last := int64(-1)
	for {
		v, err := m.Version(ctx)
		if err != nil {
			return err
		}
		if v == 0 || v == last {
			return nil
		}
		last = v
		if err := m.Down(ctx); err != nil {
			return err
		}
	}
}

// WithTx runs fn inside a transaction that is rolled back afterwards,
// including when fn panics or calls t.FailNow.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("rollback: %v", err)
		}
	}()

	fn(t, tx)
}
