package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alshoaa/siteadmin/internal/db/connection"
	"github.com/alshoaa/siteadmin/internal/db/schema"
)

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().BoolVar(&migrateAll, "all", false, "Also create the pages, portfolio_items and users tables")

	rootCmd.AddCommand(migrateCmd)
}

var (
	migrateAll bool

	migrateCmd = &cobra.Command{
		Use:     "migrate",
		Short:   "Create the database tables if they do not exist",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := connection.Open(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}
			defer connection.Close(db) //nolint:errcheck

			bootstrap := schema.Bootstrap
			if migrateAll {
				bootstrap = schema.BootstrapAll
			}

			if err := bootstrap(cmd.Context(), db); err != nil {
				return err //nolint:wrapcheck
			}

			log.Info().Bool("all", migrateAll).Msg("database tables are up to date")

			return nil
		},
	}
)
