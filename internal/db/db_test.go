package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseSlot runs the behaviour every backend must share
func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()

	_, err := slot.Get("activities")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, slot.Put("activities", []byte(`[]`)))
	got, err := slot.Get("activities")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Put overwrites
	require.NoError(t, slot.Put("activities", []byte(`[{"date":"2024-01-01"}]`)))
	got, err = slot.Get("activities")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"date":"2024-01-01"}]`), got)

	// Keys are independent
	_, err = slot.Get("other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "safehours.db")

	slot, err := OpenSQLite(path)
	require.NoError(t, err)
	exerciseSlot(t, slot)
	require.NoError(t, slot.Close())

	// Values survive reopening
	slot, err = OpenSQLite(path)
	require.NoError(t, err)
	defer slot.Close()

	got, err := slot.Get("activities")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"date":"2024-01-01"}]`), got)
}

func TestBadgerSlot_InMemory(t *testing.T) {
	slot, err := OpenBadger(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	defer slot.Close()

	exerciseSlot(t, slot)
}

func TestBadgerSlot_Persistent(t *testing.T) {
	cfg := DefaultBadgerConfig()
	cfg.Path = filepath.Join(t.TempDir(), "badger")

	slot, err := OpenBadger(cfg)
	require.NoError(t, err)
	require.NoError(t, slot.Put("activities", []byte(`[]`)))
	require.NoError(t, slot.Close())

	slot, err = OpenBadger(cfg)
	require.NoError(t, err)
	defer slot.Close()

	got, err := slot.Get("activities")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestOpenBadger_RequiresPath(t *testing.T) {
	_, err := OpenBadger(BadgerConfig{})
	assert.Error(t, err)
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()
	exerciseSlot(t, slot)

	// Callers cannot mutate stored bytes
	value := []byte("abc")
	require.NoError(t, slot.Put("k", value))
	value[0] = 'x'
	got, err := slot.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestMemorySlot_FailPut(t *testing.T) {
	slot := NewMemorySlot()
	slot.FailPut = errors.New("disk full")

	err := slot.Put("k", []byte("v"))
	assert.EqualError(t, err, "disk full")

	_, err = slot.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	slot, err := Open(BackendSQLite, filepath.Join(dir, "a.db"), nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSlot{}, slot)
	require.NoError(t, slot.Close())

	slot, err = Open("Badger", filepath.Join(dir, "badger"), nil)
	require.NoError(t, err)
	assert.IsType(t, &BadgerSlot{}, slot)
	require.NoError(t, slot.Close())

	slot, err = Open(BackendMemory, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &MemorySlot{}, slot)

	_, err = Open("postgres", "", nil)
	assert.Error(t, err)
}
