package gorm_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	adapter "github.com/alshoaa/siteadmin/internal/logger/adapter/gorm"
)

// captureLog points the global logger at a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()

	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	return &buf
}

func TestTraceNeverRendersStatement(t *testing.T) {
	buf := captureLog(t)

	l := adapter.New(0).LogMode(gormlogger.Info)
	driverErr := errors.New("Duplicate entry 'alice@example.com' for key 'users.email'") //nolint:err113

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO users (email) VALUES ('alice@example.com')", 0
	}, fmt.Errorf("insert: %w", driverErr))

	out := buf.String()
	assert.Contains(t, out, "sql statement")
	assert.Contains(t, out, `"error_class"`)
	assert.NotContains(t, out, "alice@example.com")
	assert.NotContains(t, out, "INSERT")
}

func TestTraceLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		threshold time.Duration
		begin     time.Time
		err       error
		want      string
	}{
		{
			name:  "silent logs nothing",
			level: gormlogger.Silent,
			err:   errors.New("boom"), //nolint:err113
			want:  "",
		},
		{
			name:  "record not found is not an error",
			level: gormlogger.Error,
			err:   gorm.ErrRecordNotFound,
			want:  "",
		},
		{
			name:  "error level logs failures",
			level: gormlogger.Error,
			err:   errors.New("boom"), //nolint:err113
			want:  `"level":"error"`,
		},
		{
			name:      "slow statement warns",
			level:     gormlogger.Warn,
			threshold: time.Millisecond,
			begin:     time.Now().Add(-time.Second),
			want:      `"level":"warn"`,
		},
		{
			name:  "info logs every statement at debug",
			level: gormlogger.Info,
			want:  `"level":"debug"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			begin := tt.begin
			if begin.IsZero() {
				begin = time.Now()
			}

			adapter.New(tt.threshold).LogMode(tt.level).Trace(context.Background(), begin,
				func() (string, int64) { return "SELECT 1", 1 }, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestMessagesDropArguments(t *testing.T) {
	buf := captureLog(t)

	l := adapter.New(0).LogMode(gormlogger.Info)
	l.Info(context.Background(), "value %s", "secret-value")
	l.Warn(context.Background(), "value %s", "secret-value")
	l.Error(context.Background(), "value %s", "secret-value")

	assert.Contains(t, buf.String(), "value %s")
	assert.NotContains(t, buf.String(), "secret-value")
}

type customDriverError struct{}

func (customDriverError) Error() string { return "code 1234: row 'bob' rejected" }

func TestErrorClass(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{context.Canceled, "canceled"},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), "timeout"},
		{sql.ErrNoRows, "not found"},
		{gorm.ErrDuplicatedKey, "duplicate key"},
		{gorm.ErrForeignKeyViolated, "foreign key violation"},
		{sql.ErrConnDone, "connection"},
		{fmt.Errorf("exec: %w", customDriverError{}), "driver error (gorm_test.customDriverError)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, adapter.ErrorClass(tt.err))
	}
}
