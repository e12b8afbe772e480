package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Event is one dated occurrence on a user's health timeline. Events are
// independent records: the cascade that creates companion disease and
// medication entries is a creation-time convenience, not a link between them.
type Event struct {
	ID          string  `json:"id"`
	Age         int     `json:"age"`
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        Type    `json:"type"`
	Details     Details `json:"details,omitempty"`
}

func (e Event) Validate() error {
	if err := e.Type.Validate(); err != nil {
		return err
	}
	if e.Age < 0 {
		return fmt.Errorf("age must be non-negative, got %d", e.Age)
	}
	if e.Details != nil {
		if e.Details.EventType() != e.Type {
			return fmt.Errorf("details for %s on a %s event", e.Details.EventType(), e.Type)
		}
		return e.Details.Validate()
	}
	return nil
}

// ParsedDate parses the event date for chronological ordering. Dates are
// display strings, not validated beyond being parseable; anything else sorts
// to the zero time.
func (e Event) ParsedDate() time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	aux := struct {
		*alias
		Details json.RawMessage `json:"details,omitempty"`
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.Details = nil
	if len(aux.Details) == 0 || bytes.Equal(aux.Details, []byte("null")) {
		return nil
	}

	details, ok := NewDetails(e.Type)
	if !ok {
		// Types without a variant tolerate stray empty details objects.
		return nil
	}

	if err := json.Unmarshal(aux.Details, details); err != nil {
		return fmt.Errorf("parse %s details: %w", e.Type, err)
	}
	e.Details = details

	return nil
}
