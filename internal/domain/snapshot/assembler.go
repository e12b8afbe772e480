package snapshot

import (
	"encoding/json"
	"errors"

	"golang.org/x/exp/slog"

	"healthsync/internal/domain/event"
	"healthsync/internal/storage"
)

// Assembler builds a Snapshot from the owner's current store state. It only
// ever reads the store; a field that is missing or unparseable falls back to
// its empty default rather than failing the whole snapshot.
type Assembler struct {
	store storage.Store
	log   *slog.Logger
}

func NewAssembler(store storage.Store, log *slog.Logger) *Assembler {
	return &Assembler{
		store: store,
		log:   log.With("component", "assembler"),
	}
}

// Assemble reads the four profile fields, the timeline, and the ancillary
// history lists as they are right now. Pure read; no store mutation.
func (a *Assembler) Assemble() Snapshot {
	s := Empty()

	s.PersonalInfo = PersonalInfo{
		Name:   a.field(storage.FieldName),
		Age:    a.field(storage.FieldAge),
		Height: a.field(storage.FieldHeight),
		Weight: a.field(storage.FieldWeight),
	}

	if raw, ok := a.rawField(storage.FieldTimeline); ok {
		var timeline []event.Event
		if err := json.Unmarshal([]byte(raw), &timeline); err != nil {
			a.log.Warn("stored timeline is unparseable, treating as empty", "error", err)
		} else if timeline != nil {
			s.Timeline = timeline
		}
	}

	if raw, ok := a.rawField(storage.FieldFamilyHistory); ok {
		if json.Valid([]byte(raw)) {
			s.FamilyHistory = json.RawMessage(raw)
		} else {
			a.log.Warn("stored family history is unparseable, treating as empty")
		}
	}

	if raw, ok := a.rawField(storage.FieldTravelHistory); ok {
		var travel []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &travel); err != nil {
			a.log.Warn("stored travel history is unparseable, treating as empty", "error", err)
		} else if travel != nil {
			s.TravelHistory = travel
		}
	}

	return s
}

func (a *Assembler) field(name string) *string {
	raw, ok := a.rawField(name)
	if !ok {
		return nil
	}
	return &raw
}

func (a *Assembler) rawField(name string) (string, bool) {
	value, err := a.store.Get(storage.Key(name))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn("store read failed, treating field as absent", "field", name, "error", err)
		}
		return "", false
	}
	return value, true
}
