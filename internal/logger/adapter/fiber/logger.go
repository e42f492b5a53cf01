// Package fiber provides a zerolog access log middleware for fiber.
package fiber

import (
	"errors"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/alshoaa/siteadmin/internal/logger"
	"github.com/alshoaa/siteadmin/internal/uniuri"
)

// HeaderRequestID carries the request id in requests and responses.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID is the fiber.Ctx locals key holding the request id.
const LocalRequestID = "request_id"

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CheckAliveURI for disabling logging of check alive http calls.
	CheckAliveURI string

	// Output is an additional access log destination.
	//
	// Optional. Default: nil
	Output io.Writer
}

// New creates a new fiber access logging middleware using zerolog.
func New(cfg Config) fiber.Handler {
	var writers []io.Writer

	if cfg.Config.File.Enabled {
		if w := logger.NewRollingAccessFile(&cfg.Config); w != nil {
			writers = append(writers, w)
		}
	}

	// console access log needs the console logger and its own switch
	if cfg.Config.Console.Enabled && cfg.Config.EnableAccessLogToConsole {
		if cfg.Config.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	if cfg.Output != nil {
		writers = append(writers, cfg.Output)
	}

	accessLogger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(c fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uniuri.RequestID()
		}

		c.Locals(LocalRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		chainErr := c.Next()
		elapsed := time.Since(start).Seconds()

		c.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', 6, 64))

		if cfg.Config.DisableCheckAlive && c.Path() == cfg.CheckAliveURI {
			return chainErr
		}

		// fasthttp normalizes the path, log the original request URI
		uri := string(c.Request().RequestURI())

		event := accessLogger.Log().
			Str("request_id", requestID).
			Str("IP", c.IP()).
			Int("status", status(c, chainErr)).
			Float64("X-Performance", elapsed).
			Str("URI", uri).
			Str("method", c.Method()).
			Bytes("host", c.Request().Host()).
			Str(fiber.HeaderXForwardedFor, c.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, c.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, c.Get(fiber.HeaderReferer))

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		// the app error handler renders the response
		return chainErr
	}
}

// status predicts the status the error handler will send for err.
func status(c fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}

	return fiber.StatusInternalServerError
}
