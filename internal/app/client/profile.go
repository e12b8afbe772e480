package client

import (
	"errors"
	"fmt"

	"healthsync/internal/storage"
)

// ProfileFields are the personal-info fields a user can set.
var ProfileFields = []string{
	storage.FieldName,
	storage.FieldAge,
	storage.FieldHeight,
	storage.FieldWeight,
}

// SetProfileField stores one personal-info field. The age is additionally
// mirrored under the logged-in user's namespaced key so the entry form can
// prefill it.
func (a *App) SetProfileField(field, value string) error {
	if !validProfileField(field) {
		return fmt.Errorf("unknown profile field: %s", field)
	}

	if err := a.store.Set(storage.Key(field), value); err != nil {
		return fmt.Errorf("set %s: %w", field, err)
	}

	if field == storage.FieldAge {
		if u, err := a.users.Current(); err == nil {
			if err := a.store.Set(storage.UserKey(u.ID, storage.FieldAge), value); err != nil {
				a.log.Warn("failed to set per-user age", "error", err)
			}
		}
	}

	return nil
}

// ProfileField reads one personal-info field; ok is false when unset.
func (a *App) ProfileField(field string) (string, bool) {
	value, err := a.store.Get(storage.Key(field))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.Warn("profile read failed", "field", field, "error", err)
		}
		return "", false
	}
	return value, true
}

func validProfileField(field string) bool {
	for _, f := range ProfileFields {
		if f == field {
			return true
		}
	}
	return false
}
