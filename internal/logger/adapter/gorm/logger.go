// Package gorm adapts gorm's logger to zerolog.
//
// Statements are never rendered: neither the SQL text nor the bound values
// reach the log, only the elapsed time, the affected row count and a
// redacted error class (see ErrorClass).
package gorm

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface on top of the global zerolog logger.
type Logger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*Logger)(nil)

// New creates a gorm logger. slowThreshold zero disables slow statement warnings.
func New(slowThreshold time.Duration) *Logger {
	return &Logger{
		level:         gormlogger.Warn,
		slowThreshold: slowThreshold,
	}
}

// LogMode returns a copy of the logger with the given level.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	out := *l
	out.level = level

	return &out
}

// Info logs the message format only, arguments may carry row data.
func (l *Logger) Info(_ context.Context, msg string, _ ...any) {
	if l.level >= gormlogger.Info {
		log.Info().Str("component", "gorm").Msg(msg)
	}
}

// Warn logs the message format only.
func (l *Logger) Warn(_ context.Context, msg string, _ ...any) {
	if l.level >= gormlogger.Warn {
		log.Warn().Str("component", "gorm").Msg(msg)
	}
}

// Error logs the message format only.
func (l *Logger) Error(_ context.Context, msg string, _ ...any) {
	if l.level >= gormlogger.Error {
		log.Error().Str("component", "gorm").Msg(msg)
	}
}

// Trace is called by gorm after every statement.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var event *zerolog.Event

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		event = log.Error().Str("error_class", ErrorClass(err))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		event = log.Warn().Dur("threshold", l.slowThreshold)
	case l.level >= gormlogger.Info:
		event = log.Debug()
	default:
		return
	}

	_, rows := fc()

	event.Str("component", "gorm").
		Dur("elapsed", elapsed).
		Int64("rows", rows).
		Msg("sql statement")
}

// ErrorClass maps a driver or gorm error to a short description that is safe
// to log: driver messages can quote row values (MySQL's "Duplicate entry
// 'alice'"), so they are never included.
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, sql.ErrNoRows):
		return "not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "duplicate key"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "foreign key violation"
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return "check constraint violation"
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return "connection"
	case errors.Is(err, sql.ErrTxDone):
		return "transaction done"
	}

	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}

		err = inner
	}

	return fmt.Sprintf("driver error (%T)", err)
}
