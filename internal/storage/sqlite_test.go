package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "healthsync.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	// Missing key.
	_, err = store.Get("absent")
	assert.ErrorIs(t, err, ErrNotFound)

	// Set, get, overwrite.
	require.NoError(t, store.Set("k", "v1"))
	require.NoError(t, store.Set("k", "v2"))
	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	// Delete.
	require.NoError(t, store.Delete("k"))
	_, err = store.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "healthsync.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(Key(FieldName), "Jane"))
	require.NoError(t, store.Close())

	// Act
	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	// Assert
	value, err := reopened.Get(Key(FieldName))
	require.NoError(t, err)
	assert.Equal(t, "Jane", value)
}
