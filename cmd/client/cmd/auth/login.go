// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the local account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		fmt.Print("Username: ")
		var username string
		_, _ = fmt.Scanln(&username)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		u, err := app.Users().Login(username, string(password))
		if err != nil {
			return err
		}

		color.Green("Welcome back, %s!", u.Name)
		return nil
	},
}
