// cmd/client/cmd/travel/travel.go
package travel

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
)

var (
	location string
	year     string
	notes    string
)

var TravelCmd = &cobra.Command{
	Use:   "travel",
	Short: "Manage travel history",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a visited destination",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		entry, err := app.AddTravelEntry(location, year, notes)
		if err != nil {
			return err
		}

		color.Green("Recorded %s (%s).", entry.Location, entry.Year)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show travel history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		entries := app.TravelHistory()
		if len(entries) == 0 {
			fmt.Println("No travel history yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s - %s\n", e.Location, e.Year)
			if e.Notes != "" {
				fmt.Printf("  %s\n", e.Notes)
			}
		}

		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&location, "location", "l", "", "destination, e.g. 'New York, USA'")
	addCmd.Flags().StringVarP(&year, "year", "y", "", "year of the trip")
	addCmd.Flags().StringVar(&notes, "notes", "", "notes about the trip")

	TravelCmd.AddCommand(addCmd)
	TravelCmd.AddCommand(listCmd)
}
