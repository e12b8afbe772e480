// cmd/client/cmd/profile/profile.go
package profile

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage personal info fields",
	Long:  `Show or set the personal-info fields (name, age, height, weight) included in shared snapshots.`,
}

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a personal info field",
	Long:  fmt.Sprintf("Set one of: %s.", strings.Join(client.ProfileFields, ", ")),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		return app.SetProfileField(args[0], args[1])
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show personal info fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		for _, field := range client.ProfileFields {
			value, ok := app.ProfileField(field)
			if !ok {
				value = "-"
			}
			fmt.Printf("%-8s %s\n", field+":", value)
		}

		return nil
	},
}

func init() {
	ProfileCmd.AddCommand(setCmd)
	ProfileCmd.AddCommand(showCmd)
}
