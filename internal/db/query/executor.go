// Package query runs parameterized statements against the shared database
// handle and converts driver failures into the package's error values.
//
// Statements always take their values as positional arguments bound by the
// driver; callers never build SQL from input.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	gormadapter "github.com/alshoaa/siteadmin/internal/logger/adapter/gorm"
)

const (
	opMany    = "query many"
	opOne     = "query one"
	opExecute = "execute"
	opInsert  = "insert"

	outcomeOK        = "ok"
	outcomeNotFound  = "not_found"
	outcomeDuplicate = "duplicate"
	outcomeError     = "error"
)

var queryDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
	prometheus.HistogramOpts{
		Name:    "siteadmin_query_duration_seconds",
		Help:    "Duration of database statements by executor operation and outcome.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"op", "outcome"},
)

// Executor runs statements on one database handle.
type Executor struct {
	db *gorm.DB
}

// New creates an Executor for db.
func New(db *gorm.DB) *Executor {
	return &Executor{db: db}
}

// DB returns the underlying handle.
func (e *Executor) DB() *gorm.DB {
	return e.db
}

// Many returns every row of the statement scanned into T. An empty result is
// an empty, non-nil slice.
func Many[T any](ctx context.Context, e *Executor, sql string, args ...any) ([]T, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	start := time.Now()
	out := make([]T, 0)

	if err := e.db.WithContext(ctx).Raw(sql, args...).Scan(&out).Error; err != nil {
		return nil, e.fail(opMany, start, err)
	}

	observe(opMany, outcomeOK, start)

	return out, nil
}

// One returns the first row of the statement scanned into T, or ErrNotFound.
func One[T any](ctx context.Context, e *Executor, sql string, args ...any) (T, error) {
	var out T

	if err := e.ready(); err != nil {
		return out, err
	}

	start := time.Now()

	tx := e.db.WithContext(ctx).Raw(sql, args...).Scan(&out)
	if tx.Error != nil {
		var zero T
		return zero, e.fail(opOne, start, tx.Error)
	}

	if tx.RowsAffected == 0 {
		observe(opOne, outcomeNotFound, start)
		return out, ErrNotFound
	}

	observe(opOne, outcomeOK, start)

	return out, nil
}

// Execute runs an INSERT, UPDATE, DELETE or DDL statement and returns the
// number of affected rows.
func (e *Executor) Execute(ctx context.Context, sql string, args ...any) (int64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}

	start := time.Now()

	tx := e.db.WithContext(ctx).Exec(sql, args...)
	if tx.Error != nil {
		return 0, e.fail(opExecute, start, tx.Error)
	}

	observe(opExecute, outcomeOK, start)

	return tx.RowsAffected, nil
}

// Insert runs an INSERT statement into a table with an "id" primary key and
// returns the generated id. The id is read in the same round trip
// (RETURNING) or on the same pinned connection (MySQL), so concurrent
// writers can not observe each other's ids.
func (e *Executor) Insert(ctx context.Context, sql string, args ...any) (int64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}

	var (
		id    int64
		start = time.Now()
		db    = e.db.WithContext(ctx)
		err   error
	)

	switch db.Dialector.Name() {
	case "mysql":
		err = db.Transaction(func(tx *gorm.DB) error {
			if execErr := tx.Exec(sql, args...).Error; execErr != nil {
				return execErr
			}

			return tx.Raw("SELECT LAST_INSERT_ID()").Scan(&id).Error
		})
	default:
		err = db.Raw(strings.TrimRight(sql, " ;\n\t")+" RETURNING id", args...).Scan(&id).Error
	}

	if err != nil {
		return 0, e.fail(opInsert, start, err)
	}

	observe(opInsert, outcomeOK, start)

	return id, nil
}

func (e *Executor) ready() error {
	if e == nil || e.db == nil {
		return ErrNilDB
	}

	return nil
}

// fail logs the redacted failure and wraps it into a TransportError.
func (e *Executor) fail(op string, start time.Time, err error) error {
	if IsDuplicate(err) {
		observe(op, outcomeDuplicate, start)
		log.Warn().Str("op", op).Str("error_class", "duplicate key").Msg("statement rejected")

		return &TransportError{Op: op, Err: fmt.Errorf("%w: %w", ErrDuplicate, err)}
	}

	observe(op, outcomeError, start)
	log.Error().Str("op", op).Str("error_class", gormadapter.ErrorClass(err)).Msg("statement failed")

	return &TransportError{Op: op, Err: err}
}

// IsDuplicate reports whether err is a unique constraint violation. gorm
// translates the common drivers, the message markers cover driver versions
// without a translator.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Error 1062") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func observe(op, outcome string, start time.Time) {
	queryDuration.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())
}
