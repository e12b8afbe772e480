// cmd/client/cmd/auth/auth.go
package auth

import (
	"github.com/spf13/cobra"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the local account",
	Long: `Register, log in and out of the local HealthSync account.

Accounts exist only on this machine; the login is a convenience gate,
not a security boundary.`,
}

func init() {
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(whoamiCmd)
}
