package snapshot

import (
	"encoding/json"

	"healthsync/internal/domain/event"
)

// PersonalInfo holds the owner's profile fields. Unset fields are nil and
// serialize as JSON null; every key is always present in the wire form, so
// the null/absent convention survives round trips.
type PersonalInfo struct {
	Name   *string `json:"name"`
	Age    *string `json:"age"`
	Height *string `json:"height"`
	Weight *string `json:"weight"`
}

// Snapshot is a point-in-time aggregate of everything a user shares:
// profile fields, the event timeline, and ancillary history. It is derived
// from the store on demand and has no identity beyond its encoded form.
type Snapshot struct {
	PersonalInfo  PersonalInfo      `json:"personalInfo"`
	Timeline      []event.Event     `json:"timeline"`
	FamilyHistory json.RawMessage   `json:"familyHistory"`
	TravelHistory []json.RawMessage `json:"travelHistory"`
}

// Empty returns the zero-content snapshot: no profile fields, empty
// collections, empty family history object.
func Empty() Snapshot {
	return Snapshot{
		Timeline:      []event.Event{},
		FamilyHistory: json.RawMessage("{}"),
		TravelHistory: []json.RawMessage{},
	}
}
