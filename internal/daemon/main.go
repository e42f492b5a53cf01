// Package daemon wires the database, the handlers and the web service.
package daemon

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/alshoaa/siteadmin/internal/auth"
	"github.com/alshoaa/siteadmin/internal/config"
	"github.com/alshoaa/siteadmin/internal/db/connection"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/db/schema"
	"github.com/alshoaa/siteadmin/internal/web"
	"github.com/alshoaa/siteadmin/internal/web/handler"
)

var (
	// ErrNilConfig is returned by New without configuration.
	ErrNilConfig = errors.New("config is nil")

	// ErrDatabaseUnavailable is returned when the database can not be
	// reached. Details are only logged.
	ErrDatabaseUnavailable = errors.New("service unavailable: database connection failed")

	// ErrSchemaBootstrap is returned when the tables can not be created.
	ErrSchemaBootstrap = errors.New("service unavailable: database schema could not be created")
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// New opens the database, creates the tables and builds the web service.
// In dev mode every table is created and demo content is seeded.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	db, err := connection.Open(cfg)
	if err != nil {
		return nil, ErrDatabaseUnavailable
	}

	d, err := build(ctx, cfg, db)
	if err != nil {
		_ = connection.Close(db) //nolint:errcheck
		return nil, err
	}

	return d, nil
}

func build(ctx context.Context, cfg *config.Config, db *gorm.DB) (*Daemon, error) {
	bootstrap := schema.Bootstrap
	if cfg.DevMode {
		bootstrap = schema.BootstrapAll
	}

	if err := bootstrap(ctx, db); err != nil {
		log.Error().Str("error_class", "schema").Msg("schema bootstrap failed")
		return nil, ErrSchemaBootstrap
	}

	ex := query.New(db)

	if cfg.DevMode {
		seed(ctx, ex)
	}

	webService, err := web.New(cfg, handler.Deps{
		Executor: ex,
		Users:    auth.NewLocalProvider(ex),
	})
	if err != nil {
		return nil, fmt.Errorf("web service: %w", err)
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		webService: webService,
	}, nil
}

// Start starts the web service and blocks until it stopped.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// Web returns the web service.
func (d *Daemon) Web() *web.Service {
	return d.webService
}

// Close releases the database connection.
func (d *Daemon) Close() {
	if err := connection.Close(d.db); err != nil {
		log.Warn().Err(err).Msg("failed to close database connection")
	}
}
