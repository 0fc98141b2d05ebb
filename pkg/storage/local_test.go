package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return store
}

func TestLocalStore_SaveAndDelete(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save("user-1/photo.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/user-1/photo.png", url)

	data, err := os.ReadFile(filepath.Join(store.Root(), "user-1", "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, store.Delete("user-1/photo.png"))

	_, err = os.Stat(filepath.Join(store.Root(), "user-1", "photo.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteMissing(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete("user-1/nope.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("../escape.png", strings.NewReader("x"))
	assert.Error(t, err)

	err = store.Delete("user-1/../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalStore_KeyFromURL(t *testing.T) {
	store := newTestStore(t)

	key, ok := store.KeyFromURL("http://localhost:8080/uploads/user-1/a.png")
	require.True(t, ok)
	assert.Equal(t, "user-1/a.png", key)

	_, ok = store.KeyFromURL("http://elsewhere.example/user-1/a.png")
	assert.False(t, ok)

	_, ok = store.KeyFromURL("http://localhost:8080/uploads/")
	assert.False(t, ok)
}
