package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"healthsync/internal/domain/event"
	"healthsync/internal/storage"
)

// Timeline returns the stored event list. A missing or unparseable timeline
// reads as empty, never as an error.
func (a *App) Timeline() []event.Event {
	raw, err := a.store.Get(storage.Key(storage.FieldTimeline))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn("timeline read failed, treating as empty", "error", err)
		}
		return []event.Event{}
	}

	var timeline []event.Event
	if err := json.Unmarshal([]byte(raw), &timeline); err != nil {
		a.log.Warn("stored timeline is unparseable, treating as empty", "error", err)
		return []event.Event{}
	}
	if timeline == nil {
		return []event.Event{}
	}

	return timeline
}

// SubmitDraft expands a form draft into its events and appends them to the
// timeline. The whole stored list is replaced; there are no partial edits.
func (a *App) SubmitDraft(d event.Draft) ([]event.Event, error) {
	created, err := event.Expand(d)
	if err != nil {
		return nil, err
	}

	timeline := append(a.Timeline(), created...)
	if err := a.saveTimeline(timeline); err != nil {
		return nil, err
	}

	// Remember the age for the next entry form, per user when logged in.
	if u, err := a.users.Current(); err == nil {
		if err := a.store.Set(storage.UserKey(u.ID, storage.FieldAge), d.Age); err != nil {
			a.log.Warn("failed to remember entry age", "error", err)
		}
	}

	a.log.Info("timeline events added", "count", len(created))
	return created, nil
}

// RemoveEvent deletes one event by ID. Removing an unknown ID is a no-op.
func (a *App) RemoveEvent(id string) error {
	timeline := a.Timeline()
	kept := timeline[:0]
	for _, e := range timeline {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	return a.saveTimeline(kept)
}

func (a *App) saveTimeline(timeline []event.Event) error {
	raw, err := json.Marshal(timeline)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}

	if err := a.store.Set(storage.Key(storage.FieldTimeline), string(raw)); err != nil {
		return fmt.Errorf("save timeline: %w", err)
	}

	return nil
}
