package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strconv"

	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
	"github.com/angelmondragon/vendorpayments-backend/pkg/migrate/migrations"
	"github.com/pressly/goose/v3"
)

// DefaultDir is the on-disk root of the migrations tree. Each driver has its own
// subdirectory (postgres, mysql, sqlite).
const DefaultDir = "pkg/migrate/migrations"

// Dialect maps a configured database driver to its goose dialect name.
func Dialect(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverMySQL:
		return "mysql", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	}
	return "", fmt.Errorf("unsupported migration driver %q", driver)
}

// DirFor returns the migrations subdirectory for driver under root.
// An empty root resolves against the embedded migrations.
func DirFor(root, driver string) string {
	if root == "" {
		return driver
	}
	return path.Join(root, driver)
}

// prepare selects the dialect and the filesystem goose reads migrations from.
func prepare(root, driver string) (string, error) {
	dialect, err := Dialect(driver)
	if err != nil {
		return "", err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("set goose dialect: %w", err)
	}
	if root == "" {
		goose.SetBaseFS(migrations.FS)
	} else {
		goose.SetBaseFS(nil)
	}
	return DirFor(root, driver), nil
}

// Run executes a standard goose command that requires a DB connection.
// An empty root runs the migrations compiled into the binary.
func Run(ctx context.Context, db *sql.DB, driver, root, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	dir, err := prepare(root, driver)
	if err != nil {
		return err
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, driver, root, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}
	if db == nil {
		return fmt.Errorf("db is required")
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	dir, err := prepare(root, driver)
	if err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil

	case current < target:
		if err := goose.UpToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil

	default:
		if err := goose.DownToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}
