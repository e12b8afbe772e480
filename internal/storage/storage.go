package storage

import (
	"errors"
	"fmt"
)

// Well-known fields kept in the store. Keys on disk are namespaced with the
// app prefix, e.g. "healthsync-timeline".
const (
	FieldName          = "name"
	FieldAge           = "age"
	FieldHeight        = "height"
	FieldWeight        = "weight"
	FieldTimeline      = "timeline"
	FieldFamilyHistory = "familyHistory"
	FieldTravelHistory = "travelHistory"
	FieldUsers         = "users"
	FieldSession       = "session"
)

const prefix = "healthsync"

var ErrNotFound = errors.New("key not found")

// Store is the key-value capability the rest of the app reads and writes
// through. Values are plain text; callers own their serialization.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Key returns the namespaced store key for a field: "healthsync-<field>".
func Key(field string) string {
	return fmt.Sprintf("%s-%s", prefix, field)
}

// UserKey returns the per-user store key for a field:
// "healthsync-<userID>-<field>".
func UserKey(userID, field string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, userID, field)
}
