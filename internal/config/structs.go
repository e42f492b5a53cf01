package config

import (
	"github.com/alshoaa/siteadmin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
	AdminToken   string // bearer token for /api/admin routes, admin routes are disabled when empty
}
