package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"healthsync/internal/storage"
)

// TravelEntry is one visited destination. The snapshot carries these
// opaquely; only the client interprets them.
type TravelEntry struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Year     string `json:"year"`
	Notes    string `json:"notes,omitempty"`
}

// TravelHistory returns the stored travel entries, empty when unset or
// unparseable.
func (a *App) TravelHistory() []TravelEntry {
	raw, err := a.store.Get(storage.Key(storage.FieldTravelHistory))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn("travel history read failed, treating as empty", "error", err)
		}
		return []TravelEntry{}
	}

	var entries []TravelEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		a.log.Warn("stored travel history is unparseable, treating as empty", "error", err)
		return []TravelEntry{}
	}
	if entries == nil {
		return []TravelEntry{}
	}

	return entries
}

// AddTravelEntry appends one destination to the travel history.
func (a *App) AddTravelEntry(location, year, notes string) (TravelEntry, error) {
	if location == "" {
		return TravelEntry{}, fmt.Errorf("location is required")
	}

	entry := TravelEntry{
		ID:       uuid.NewString(),
		Location: location,
		Year:     year,
		Notes:    notes,
	}

	entries := append(a.TravelHistory(), entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		return TravelEntry{}, fmt.Errorf("marshal travel history: %w", err)
	}

	if err := a.store.Set(storage.Key(storage.FieldTravelHistory), string(raw)); err != nil {
		return TravelEntry{}, fmt.Errorf("save travel history: %w", err)
	}

	return entry, nil
}
