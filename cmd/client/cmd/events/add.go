// cmd/client/cmd/events/add.go
package events

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
	"healthsync/internal/domain/event"
)

var (
	title       string
	date        string
	age         string
	description string
	eventType   string

	visitType             string
	diseaseName           string
	medicationsPrescribed string

	medicationForDisease string

	height string
	weight string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a timeline event",
	Long: `Add a new event to the health timeline.

A serious doctor visit with a diagnosis or prescription also creates the
matching Disease and Medication entries. A disease with a medication
creates the Medication entry alongside it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		scanner := bufio.NewScanner(os.Stdin)
		if title == "" {
			fmt.Print("Title / reason: ")
			if scanner.Scan() {
				title = scanner.Text()
			}
		}
		if date == "" {
			fmt.Print("Date (YYYY-MM-DD): ")
			if scanner.Scan() {
				date = scanner.Text()
			}
		}
		if age == "" {
			fmt.Print("Age at the time: ")
			if scanner.Scan() {
				age = scanner.Text()
			}
		}

		draft := event.Draft{
			Title:                 title,
			Date:                  date,
			Age:                   age,
			Description:           description,
			Type:                  event.Type(eventType),
			VisitType:             event.VisitType(visitType),
			DiseaseName:           diseaseName,
			MedicationsPrescribed: medicationsPrescribed,
			MedicationForDisease:  medicationForDisease,
			Height:                height,
			Weight:                weight,
		}

		created, err := app.SubmitDraft(draft)
		if err != nil {
			if errors.Is(err, event.ErrEmptyDraft) {
				return fmt.Errorf("title, date, type and age are all required")
			}
			return err
		}

		for _, e := range created {
			color.Green("Added %s: %s", e.Type, e.Title)
		}

		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&title, "title", "t", "", "event title or visit reason")
	addCmd.Flags().StringVarP(&date, "date", "d", "", "event date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&age, "age", "a", "", "age when the event happened")
	addCmd.Flags().StringVar(&description, "desc", "", "description or notes")
	addCmd.Flags().StringVar(&eventType, "type", string(event.TypeOther), "event type")

	addCmd.Flags().StringVar(&visitType, "visit-type", "", "doctor visit kind: 'Casual Visit' or 'Serious Visit'")
	addCmd.Flags().StringVar(&diseaseName, "disease", "", "diagnosis made during a serious visit")
	addCmd.Flags().StringVar(&medicationsPrescribed, "prescribed", "", "medication prescribed during a serious visit")

	addCmd.Flags().StringVar(&medicationForDisease, "medication", "", "medication prescribed for a disease entry")

	addCmd.Flags().StringVar(&height, "height", "", "measured height")
	addCmd.Flags().StringVar(&weight, "weight", "", "measured weight")
}
