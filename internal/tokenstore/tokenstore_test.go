package tokenstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFile(path, "correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, store.Set("eyJhbGciOiJIUzI1NiJ9.fake.token"))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.fake.token", got)

	// token is not stored in the clear
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "fake.token")
}

func TestFileMissingIsEmpty(t *testing.T) {
	store, err := NewFile(filepath.Join(t.TempDir(), "missing"), "pw")
	require.NoError(t, err)

	got, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFile(path, "right")
	require.NoError(t, err)
	require.NoError(t, store.Set("secret"))

	other, err := NewFile(path, "wrong")
	require.NoError(t, err)
	_, err = other.Get()
	assert.Error(t, err)
}

func TestFileClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFile(path, "pw")
	require.NoError(t, err)
	require.NoError(t, store.Set("secret"))

	require.NoError(t, store.Clear())
	// clearing twice is fine
	require.NoError(t, store.Clear())

	got, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFile(path, "pw")
	require.NoError(t, err)

	require.NoError(t, store.Set("first"))
	require.NoError(t, store.Set("second"))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestNewFileValidation(t *testing.T) {
	_, err := NewFile("", "pw")
	assert.Error(t, err)

	_, err = NewFile("/tmp/token", "")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	got, err := m.Get()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, m.Set("tok"))
	got, err = m.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok", got)

	require.NoError(t, m.Clear())
	got, err = m.Get()
	require.NoError(t, err)
	assert.Empty(t, got)
}
