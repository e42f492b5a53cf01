// Package connection opens the process wide database handle.
//
// The handle is created once at startup and handed to every component that
// needs it; nothing in this package memoizes it behind a global.
package connection

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alshoaa/siteadmin/internal/config"
	"github.com/alshoaa/siteadmin/internal/db/dsn"
	gormadapter "github.com/alshoaa/siteadmin/internal/logger/adapter/gorm"
)

const pingTimeout = 5 * time.Second

var (
	// ErrConnect is returned when the database can not be reached. It never
	// carries host, user or driver detail.
	ErrConnect = errors.New("database connection failed")

	// ErrNilConfig is returned when Open is called without configuration.
	ErrNilConfig = errors.New("database config is nil")
)

// Dialector selects the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) gorm.Dialector {
	source := dsn.Create(cfg)

	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return postgres.Open(source)
	case config.EngineSQLite:
		return sqlite.Open(source)
	default:
		return mysql.Open(source)
	}
}

// Open creates the database handle. Statement failures surface as errors,
// constraint violations are translated to gorm's sentinel errors and the
// logger never renders SQL.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	slow := time.Duration(cfg.Log.SlowQueryThreshold) * time.Millisecond

	db, err := gorm.Open(Dialector(cfg), &gorm.Config{
		TranslateError: true,
		Logger:         gormadapter.New(slow),
	})
	if err != nil {
		logFailure(cfg, "open", err)
		return nil, ErrConnect
	}

	sqlDB, err := db.DB()
	if err != nil {
		logFailure(cfg, "pool", err)
		return nil, ErrConnect
	}

	// sqlite allows a single writer and ":memory:" is private to one connection.
	if cfg.DB.GormEngine == config.EngineSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		logFailure(cfg, "ping", err)

		return nil, ErrConnect
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database connection established")

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return sqlDB.Close() //nolint:wrapcheck
}

func logFailure(cfg *config.Config, step string, err error) {
	log.Error().
		Str("engine", cfg.DB.GormEngine).
		Str("dsn", dsn.Redacted(cfg)).
		Str("step", step).
		Str("error_class", gormadapter.ErrorClass(err)).
		Msg("database connection failed")
}
