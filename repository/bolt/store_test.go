package bolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), "zenai")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStorePutGet(t *testing.T) {
	store := openTestStore(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Put("rec", record{Name: "zen", Count: 3}))

	var got record
	found, err := store.Get("rec", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "zen", Count: 3}, got)
}

func TestStoreGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	var out map[string]string
	found, err := store.Get("absent", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreMalformedValueReadsAsAbsent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("blob", "not an object"))

	var out struct{ Name string }
	found, err := store.Get("blob", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreDeleteIdempotent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("k", 1))
	require.NoError(t, store.Delete("k"))
	require.NoError(t, store.Delete("k"))

	var out int
	found, err := store.Get("k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreUpdateReadModifyWrite(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("list", []int{1, 2}))

	var list []int
	err := store.Update("list", &list, func(found bool) (interface{}, error) {
		require.True(t, found)
		return append(list, 3), nil
	})
	require.NoError(t, err)

	var got []int
	found, err := store.Get("list", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestStoreKeys(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("a", 1))
	require.NoError(t, store.Put("b", 2))

	count, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
