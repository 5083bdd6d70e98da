package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localnotes/internal/notes/adapters/file"
)

func TestSlotStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	store, err := file.NewSlotStore(ctx, dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)

	t.Run("missing slot", func(t *testing.T) {
		_, found, err := store.Get(ctx, "notes")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("write then read", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "notes", `[{"id":"a"}]`))

		v, found, err := store.Get(ctx, "notes")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":"a"}]`, v)

		raw, err := os.ReadFile(filepath.Join(dir, "notes.json"))
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"a"}]`, string(raw))
	})

	t.Run("overwrite leaves no temporary files", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "notes", "[]"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "notes.json", entries[0].Name())
	})

	t.Run("rejects keys that escape the directory", func(t *testing.T) {
		for _, key := range []string{"", "..", "../notes", `a\b`} {
			assert.Error(t, store.Set(ctx, key, "x"), key)
			_, _, err := store.Get(ctx, key)
			assert.Error(t, err, key)
		}
	})

	assert.NoError(t, store.Close())
}
