package app

import (
	"github.com/spf13/cobra"

	"github.com/alshoaa/siteadmin/internal/auth"
	"github.com/alshoaa/siteadmin/internal/db/connection"
	"github.com/alshoaa/siteadmin/internal/db/query"
)

func init() { //nolint: gochecknoinits
	userAddCmd.Flags().StringVar(&newUser.Username, "username", "", "Username of the new account")
	userAddCmd.Flags().StringVar(&newUser.Email, "email", "", "Email address of the new account")
	userAddCmd.Flags().StringVar(&newUser.Password, "password", "", "Password of the new account")

	for _, name := range []string{"username", "email", "password"} {
		_ = userAddCmd.MarkFlagRequired(name) //nolint:errcheck
	}

	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}

var (
	newUser auth.RegisterInput

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	userAddCmd = &cobra.Command{
		Use:     "add",
		Short:   "Register a new user account",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := connection.Open(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}
			defer connection.Close(db) //nolint:errcheck

			id, err := auth.NewLocalProvider(query.New(db)).Register(cmd.Context(), newUser)
			if err != nil {
				return err //nolint:wrapcheck
			}

			cmd.Printf("created user %q with id %d\n", newUser.Username, id)

			return nil
		},
	}
)
