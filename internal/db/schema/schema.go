// Package schema creates the tables the handlers work on.
package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/alshoaa/siteadmin/internal/db/models"
)

// ErrNilDB is returned when no database handle is given.
var ErrNilDB = errors.New("schema: database connection is nil")

// Bootstrap creates the contact_messages table if it does not exist.
// Running it again leaves the table and its rows untouched.
func Bootstrap(ctx context.Context, db *gorm.DB) error {
	return migrate(ctx, db, &models.ContactMessage{})
}

// BootstrapAll creates every table including pages, portfolio_items and
// users together with their unique indexes.
func BootstrapAll(ctx context.Context, db *gorm.DB) error {
	return migrate(ctx, db,
		&models.ContactMessage{},
		&models.Page{},
		&models.PortfolioItem{},
		&models.User{},
	)
}

func migrate(ctx context.Context, db *gorm.DB, tables ...any) error {
	if db == nil {
		return ErrNilDB
	}

	if err := db.WithContext(ctx).AutoMigrate(tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	log.Debug().Int("tables", len(tables)).Msg("schema bootstrap finished")

	return nil
}
