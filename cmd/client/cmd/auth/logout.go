// cmd/client/cmd/auth/logout.go
package auth

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
	"healthsync/internal/domain/user"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the local account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		if err := app.Users().Logout(); err != nil {
			return err
		}

		color.Green("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		u, err := app.Users().Current()
		if err != nil {
			if errors.Is(err, user.ErrNoSession) {
				fmt.Println("Not logged in.")
				return nil
			}
			return err
		}

		fmt.Printf("%s (%s)\n", u.Name, u.Username)
		return nil
	},
}
