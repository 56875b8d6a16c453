package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBolt(t *testing.T) (*BoltStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewBoltStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestBoltStore_SetGet(t *testing.T) {
	store, _ := newTestBolt(t)

	require.NoError(t, store.Set("schoolData", []byte("payload")))
	value, err := store.Get("schoolData")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
}

func TestBoltStore_GetMissing(t *testing.T) {
	store, _ := newTestBolt(t)

	_, err := store.Get("absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoltStore_Overwrite(t *testing.T) {
	store, _ := newTestBolt(t)

	require.NoError(t, store.Set("k", []byte("one")))
	require.NoError(t, store.Set("k", []byte("two")))
	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), value)
}

func TestBoltStore_Delete(t *testing.T) {
	store, _ := newTestBolt(t)

	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Delete("k"))
	_, err := store.Get("k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete("k"))
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	store, path := newTestBolt(t)
	require.NoError(t, store.Set("schoolData", []byte("durable")))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get("schoolData")
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), value)
}
