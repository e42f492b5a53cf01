package app

import (
	"github.com/spf13/cobra"

	"github.com/alshoaa/siteadmin/internal/daemon"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode (creates all tables and seeds demo content)")

	rootCmd.AddCommand(startCmd)
}

var (
	devMode bool

	startCmd = &cobra.Command{
		Use:     "start",
		Short:   "Start the siteadmin web service",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if devMode {
				cfg.DevMode = true
			}

			d, err := daemon.New(cmd.Context(), &cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}
			defer d.Close()

			return d.Start() //nolint:wrapcheck
		},
	}
)
