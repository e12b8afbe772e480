// cmd/client/cmd/events/list.go
package events

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
	"healthsync/internal/domain/event"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the timeline grouped by age",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		timeline := app.Timeline()
		if len(timeline) == 0 {
			fmt.Println("No events yet. Use 'events add' to record the first one.")
			return nil
		}

		for _, group := range event.GroupByAge(timeline) {
			color.New(color.Bold).Printf("Age %d\n", group.Age)
			for _, e := range group.Events {
				fmt.Printf("  %s  %-12s %s\n", e.Date, e.Type, e.Title)
				if e.Description != "" {
					fmt.Printf("      %s\n", color.HiBlackString(e.Description))
				}
				printDetails(e)
			}
			fmt.Println()
		}

		return nil
	},
}

func printDetails(e event.Event) {
	switch d := e.Details.(type) {
	case *event.VisitDetails:
		if d.VisitType != "" {
			fmt.Printf("      visit: %s\n", d.VisitType)
		}
		if d.DiseaseName != "" {
			fmt.Printf("      diagnosis: %s\n", d.DiseaseName)
		}
		if d.MedicationsPrescribed != "" {
			fmt.Printf("      prescription: %s\n", d.MedicationsPrescribed)
		}
	case *event.MedicationDetails:
		if d.Status != "" {
			fmt.Printf("      status: %s\n", d.Status)
		}
	case *event.MeasurementDetails:
		if d.Height != "" {
			fmt.Printf("      height: %s\n", d.Height)
		}
		if d.Weight != "" {
			fmt.Printf("      weight: %s\n", d.Weight)
		}
	}
}
