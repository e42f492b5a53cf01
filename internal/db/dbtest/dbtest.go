// Package dbtest provides a bootstrapped in-memory database for tests.
package dbtest

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/db/schema"
	gormadapter "github.com/alshoaa/siteadmin/internal/logger/adapter/gorm"
)

// Open returns an executor on a fresh in-memory SQLite database with every
// table created. The database is closed when the test ends.
func Open(t *testing.T) *query.Executor {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormadapter.New(0),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// every connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, schema.BootstrapAll(context.Background(), db), "failed to migrate test database")

	return query.New(db)
}

// Count returns the number of rows in table.
func Count(t *testing.T, ex *query.Executor, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, ex.DB().Table(table).Count(&n).Error)

	return n
}

// BeforeInsert runs fn once, right before the first INSERT into table is sent
// to the database. fn receives a fresh session, so it can commit a competing
// row after every lookup of the code under test already ran.
func BeforeInsert(t *testing.T, ex *query.Executor, table string, fn func(tx *gorm.DB)) {
	t.Helper()

	var (
		fired  atomic.Bool
		prefix = "INSERT INTO " + table + " "
	)

	hook := func(db *gorm.DB) {
		if !strings.HasPrefix(db.Statement.SQL.String(), prefix) || !fired.CompareAndSwap(false, true) {
			return
		}

		fn(db.Session(&gorm.Session{NewDB: true}))
	}

	cb := ex.DB().Callback()
	name := "dbtest:before_insert_" + table

	// sqlite and postgres insert with RETURNING through Raw().Scan, mysql through Exec
	require.NoError(t, cb.Row().Before("gorm:row").Register(name, hook))
	require.NoError(t, cb.Raw().Before("gorm:raw").Register(name, hook))
}
