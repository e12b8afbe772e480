// cmd/client/cmd/tips/tips.go
package tips

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
	tipsdomain "healthsync/internal/domain/tips"
	"healthsync/internal/storage"
)

var location string

var TipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Get travel health tips for a destination",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		if location == "" {
			return fmt.Errorf("a destination is required, e.g. --location 'New York, USA'")
		}

		age := 30
		if stored, ok := app.ProfileField(storage.FieldAge); ok {
			if parsed, err := strconv.Atoi(stored); err == nil {
				age = parsed
			}
		}

		result, err := app.Tips().GenerateTravelTips(location, age)
		if err != nil {
			// A switched-off generator is an expected state, not a failure.
			if errors.Is(err, tipsdomain.ErrUnavailable) {
				color.Yellow(tipsdomain.DisabledMessage)
				return nil
			}
			return err
		}

		for _, tip := range result.Tips {
			fmt.Printf("[%s] %s\n  %s\n", tip.Severity, tip.Title, tip.Description)
		}

		return nil
	},
}

func init() {
	TipsCmd.Flags().StringVarP(&location, "location", "l", "", "destination to get tips for")
}
