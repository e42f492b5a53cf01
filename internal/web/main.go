// Package web serves the JSON API on top of the domain handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/alshoaa/siteadmin/internal/auth"
	"github.com/alshoaa/siteadmin/internal/config"
	fiberlogger "github.com/alshoaa/siteadmin/internal/logger/adapter/fiber"
	"github.com/alshoaa/siteadmin/internal/web/handler"
	"github.com/alshoaa/siteadmin/internal/web/handler/contact"
	"github.com/alshoaa/siteadmin/internal/web/handler/page"
	"github.com/alshoaa/siteadmin/internal/web/handler/portfolio"
	"github.com/alshoaa/siteadmin/internal/web/handler/user"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
)

var (
	// ErrNilConfig is returned by New without configuration.
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilDeps is returned by New without executor or user provider.
	ErrNilDeps = errors.New("executor and user provider cannot be nil")
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until the
// server stopped.
func (s *Service) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("http server listening")

	err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown lets checkalive fail for ShutDownTime seconds so load balancers
// drain this instance, then stops the http server.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, deps handler.Deps) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if deps.Executor == nil || deps.Users == nil {
		return nil, ErrNilDeps
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Immutable:      true,
			ErrorHandler:   handler.ErrorHandler,
		},
	)

	service := &Service{
		App:          app,
		cfg:          cfg,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	routes := handler.Routes{
		Public: app.Group(handler.APIPath),
	}

	if cfg.Webserver.AdminToken != "" {
		routes.Admin = app.Group(handler.AdminPath, auth.RequireToken(cfg.Webserver.AdminToken))
	} else {
		log.Warn().Msg("no admin token configured: admin routes are disabled")
	}

	for _, h := range []handler.Service{
		&contact.Service{},
		&page.Service{},
		&portfolio.Service{},
		&user.Service{},
	} {
		if err := h.Init(routes, deps); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}
