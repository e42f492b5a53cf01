// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/alshoaa/siteadmin/internal/config"
)

const (
	// MySQLDefaultExtras are used when DB.Extras is empty. clientFoundRows makes
	// an UPDATE report matched rather than changed rows.
	MySQLDefaultExtras = "charset=utf8mb4&parseTime=true&clientFoundRows=true"

	// PostgresDefaultExtras are used when DB.Extras is empty.
	PostgresDefaultExtras = "sslmode=disable TimeZone=UTC"

	redactedPassword = "xxxxx"
)

// Create builds the Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	return build(cfg, cfg.DB.Password)
}

// Redacted builds the same Data Source Name with the password masked, for logs.
func Redacted(cfg *config.Config) string {
	password := ""
	if cfg.DB.Password != "" {
		password = redactedPassword
	}

	return build(cfg, password)
}

func build(cfg *config.Config, password string) string {
	db := cfg.DB

	switch db.GormEngine {
	case config.EnginePostgres:
		extras := db.Extras
		if extras == "" {
			extras = PostgresDefaultExtras
		}

		return strings.TrimSpace(fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			db.Host,
			db.Port,
			db.User,
			password,
			db.Name,
			extras,
		))
	case config.EngineSQLite:
		if db.Extras == "" {
			return db.Name
		}

		return db.Name + "?" + db.Extras
	default:
		extras := db.Extras
		if extras == "" {
			extras = MySQLDefaultExtras
		}

		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			db.User,
			password,
			db.Host,
			db.Port,
			db.Name,
			extras,
		)
	}
}
