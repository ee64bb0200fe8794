// Package dbtest opens migrated in-memory sqlite databases for package tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db"
	"github.com/angelmondragon/vendorpayments-backend/pkg/migrate"
)

var seq atomic.Int64

// New returns a client bound to a fresh in-memory sqlite database with every
// embedded migration applied. The database is closed when the test ends.
func New(t testing.TB) *db.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    dsn,
	}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.SQL()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}

	goose.SetLogger(goose.NopLogger())
	if err := migrate.Run(context.Background(), sqlDB, config.DriverSQLite, "", "up"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}
