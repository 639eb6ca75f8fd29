package preset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "presets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testPreset(name string) Preset {
	p := New(name)
	p.Axiom = "F"
	p.Rules = []string{"F -> F+F--F+F"}
	p.Iterations = 3
	return p
}

func TestStoreSaveLoad(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.Save(testPreset("koch"))
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	loaded, err := store.Load(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStoreSaveAssignsID(t *testing.T) {
	store := openTestStore(t)

	p := testPreset("no-id")
	p.ID = ""
	saved, err := store.Save(p)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestStoreSaveRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	p := testPreset("broken")
	p.Rules = []string{"not a rule"}
	_, err := store.Save(p)
	assert.Error(t, err)
}

func TestStoreUpsert(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.Save(testPreset("v1"))
	require.NoError(t, err)

	saved.Name = "v2"
	saved.Iterations = 5
	updated, err := store.Save(saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	loaded, err := store.Load(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", loaded.Name)
	assert.Equal(t, 5, loaded.Iterations)

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not duplicate")
}

func TestStoreList(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zebra", "apple", "mango"} {
		_, err := store.Save(testPreset(name))
		require.NoError(t, err)
	}

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"apple", "mango", "zebra"},
		[]string{all[0].Name, all[1].Name, all[2].Name})
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.Save(testPreset("doomed"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(saved.ID))

	_, err = store.Load(saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(saved.ID), ErrNotFound)
}

func TestStoreLoadMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Load("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}
