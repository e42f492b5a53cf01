// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/alshoaa/siteadmin/internal/config"
	"github.com/alshoaa/siteadmin/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "siteadmin",
		Short: "siteadmin serves and maintains the content of the website",
		Long: `siteadmin stores contact messages, static pages, portfolio items and
user accounts in a relational database and serves them as a JSON API.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Directory containing main.toml")
}

// loadConfig reads the configuration and initializes the logger.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err //nolint:wrapcheck
	}

	return logger.Init(cfg.Log) //nolint:wrapcheck
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute() //nolint:wrapcheck
}
