package repository

import (
	"context"
	"testing"

	"linkedlist-backend/internal/database/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	ctx := context.Background()
	ds, err := seed.Demo()
	require.NoError(t, err)

	store := NewMemoryStore()
	result, err := Import(ctx, store, ds)
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Users: 1, Links: 3, Notes: 4, Labels: 4, LinkLabels: 6}, result)

	links, err := store.GetLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "https://tailwindcss.com", links[0].URL, "newest seed link comes first")
	assert.Regexp(t, `^link-`, links[0].ID)

	full, err := store.GetFullLink(ctx, links[2].ID)
	require.NoError(t, err)
	require.NotNil(t, full)
	assert.Equal(t, "https://svelte.dev", full.URL)
	require.Len(t, full.Notes, 2)
	assert.True(t, full.Notes[0].IsPublished)
	assert.Len(t, full.Labels, 3)

	t.Run("second import creates nothing", func(t *testing.T) {
		again, err := Import(ctx, store, ds)
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{}, again)

		links, err := store.GetLinks(ctx)
		require.NoError(t, err)
		assert.Len(t, links, 3)
	})

	t.Run("invalid data set is rejected", func(t *testing.T) {
		broken := &seed.DataSet{Links: []seed.Link{{ID: "l", UserID: "ghost", URL: "https://x.test"}}}
		_, err := Import(ctx, NewMemoryStore(), broken)
		assert.Error(t, err)
	})
}
