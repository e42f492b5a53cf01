package app

import (
	"github.com/spf13/cobra"

	"github.com/alshoaa/siteadmin/internal/config"
)

func init() { //nolint: gochecknoinits
	configDumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump as JSON instead of TOML")

	configCmd.AddCommand(configDumpCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	configDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&c)
			if err != nil {
				return err //nolint:wrapcheck
			}

			cmd.Print(out)

			return nil
		},
	}
)
