// cmd/client/cmd/events/events.go
package events

import (
	"github.com/spf13/cobra"
)

var EventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage the health timeline",
	Long: `Add, list and remove timeline events.

Supported event types:
- Vaccination
- Medication
- Doctor Visit (a serious visit can also record the diagnosis and prescription)
- Disease (optionally with the medication prescribed for it)
- Measurement
- Other`,
}

func init() {
	EventsCmd.AddCommand(addCmd)
	EventsCmd.AddCommand(listCmd)
	EventsCmd.AddCommand(removeCmd)
}
