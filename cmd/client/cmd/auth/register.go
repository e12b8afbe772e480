// cmd/client/cmd/auth/register.go
package auth

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
)

var registerName string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a local account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		name := registerName
		if name == "" {
			fmt.Print("Your name: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				name = scanner.Text()
			}
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		u, err := app.Users().Register(name, string(password))
		if err != nil {
			return err
		}

		color.Green("Account created.")
		fmt.Printf("Your username is %s - you will need it to log in.\n", color.CyanString(u.Username))

		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name for the account")
}
