package event

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Draft is the raw input of the event entry form. Age arrives as text, the
// way a form field delivers it.
type Draft struct {
	Title       string
	Date        string
	Age         string
	Description string
	Type        Type

	// Doctor Visit fields.
	VisitType             VisitType
	DiseaseName           string
	MedicationsPrescribed string

	// Disease companion field.
	MedicationForDisease string

	// Measurement fields.
	Height string
	Weight string
}

// NewID returns a fresh event identifier. Overridable in tests.
var NewID = uuid.NewString

// Expand turns one form draft into the events to append, applying the
// cascade rules:
//
//   - a Serious Visit additionally creates a Disease event when a disease
//     name was given, and a stopped Medication event when a medication was
//     prescribed, in that order after the visit itself;
//   - a Disease with a companion medication creates the disease followed by
//     a stopped Medication referencing it;
//   - every other type yields exactly one event.
//
// A draft missing title, date, type or age yields no events and ErrEmptyDraft.
func Expand(d Draft) ([]Event, error) {
	if strings.TrimSpace(d.Title) == "" ||
		strings.TrimSpace(d.Date) == "" ||
		strings.TrimSpace(string(d.Type)) == "" ||
		strings.TrimSpace(d.Age) == "" {
		return nil, ErrEmptyDraft
	}

	if err := d.Type.Validate(); err != nil {
		return nil, err
	}

	age, err := strconv.Atoi(strings.TrimSpace(d.Age))
	if err != nil || age < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAge, d.Age)
	}

	switch d.Type {
	case TypeDoctorVisit:
		return expandVisit(d, age), nil
	case TypeDisease:
		return expandDisease(d, age), nil
	default:
		return []Event{newEvent(d, age, d.Type, d.Title, d.Description, plainDetails(d))}, nil
	}
}

func expandVisit(d Draft, age int) []Event {
	details := &VisitDetails{VisitType: d.VisitType}
	if d.VisitType == VisitSerious {
		details.DiseaseName = d.DiseaseName
		details.MedicationsPrescribed = d.MedicationsPrescribed
	}

	events := []Event{newEvent(d, age, TypeDoctorVisit, d.Title, d.Description, details)}

	if d.VisitType == VisitSerious && d.DiseaseName != "" {
		description := fmt.Sprintf("Diagnosed during a visit for: %s.", d.Title)
		events = append(events, newEvent(d, age, TypeDisease, d.DiseaseName, description, nil))
	}

	if d.VisitType == VisitSerious && d.MedicationsPrescribed != "" {
		reason := d.DiseaseName
		if reason == "" {
			reason = d.Title
		}
		description := fmt.Sprintf("Prescribed for %s", reason)
		events = append(events, newEvent(d, age, TypeMedication, d.MedicationsPrescribed, description,
			&MedicationDetails{Status: StatusStopped}))
	}

	return events
}

func expandDisease(d Draft, age int) []Event {
	events := []Event{newEvent(d, age, TypeDisease, d.Title, d.Description, nil)}

	if d.MedicationForDisease != "" {
		description := fmt.Sprintf("Prescribed for %s", d.Title)
		events = append(events, newEvent(d, age, TypeMedication, d.MedicationForDisease, description,
			&MedicationDetails{Status: StatusStopped}))
	}

	return events
}

func plainDetails(d Draft) Details {
	switch d.Type {
	case TypeMeasurement:
		if d.Height == "" && d.Weight == "" {
			return nil
		}
		return &MeasurementDetails{Height: d.Height, Weight: d.Weight}
	default:
		return nil
	}
}

func newEvent(d Draft, age int, t Type, title, description string, details Details) Event {
	return Event{
		ID:          NewID(),
		Age:         age,
		Date:        d.Date,
		Title:       title,
		Description: description,
		Type:        t,
		Details:     details,
	}
}
