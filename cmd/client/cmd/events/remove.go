// cmd/client/cmd/events/remove.go
package events

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
)

var removeCmd = &cobra.Command{
	Use:   "remove <event-id>",
	Short: "Remove a timeline event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		if err := app.RemoveEvent(args[0]); err != nil {
			return err
		}

		color.Green("Event removed.")
		return nil
	},
}
