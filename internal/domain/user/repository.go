package user

import (
	"encoding/json"
	"errors"
	"fmt"

	"healthsync/internal/storage"
)

// Repository persists the local account list and the active session.
type Repository interface {
	List() ([]User, error)
	Save(users []User) error
	Session() (User, error)
	SaveSession(u User) error
	ClearSession() error
}

// StoreRepository keeps users as one JSON list under "healthsync-users" and
// the active session under "healthsync-session".
type StoreRepository struct {
	store storage.Store
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) List() ([]User, error) {
	raw, err := r.store.Get(storage.Key(storage.FieldUsers))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("read users: %w", err)
	}

	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		// A corrupted list is treated as empty, like any other store field.
		return []User{}, nil
	}

	return users, nil
}

func (r *StoreRepository) Save(users []User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}

	if err := r.store.Set(storage.Key(storage.FieldUsers), string(raw)); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	return nil
}

func (r *StoreRepository) Session() (User, error) {
	raw, err := r.store.Get(storage.Key(storage.FieldSession))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return User{}, ErrNoSession
		}
		return User{}, fmt.Errorf("read session: %w", err)
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, ErrNoSession
	}

	return u, nil
}

func (r *StoreRepository) SaveSession(u User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.store.Set(storage.Key(storage.FieldSession), string(raw)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *StoreRepository) ClearSession() error {
	return r.store.Delete(storage.Key(storage.FieldSession))
}
