package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/database/seed"
	"linkedlist-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMemoryStoreContract(t *testing.T) {
	suite.Run(t, &StoreContractSuite{
		newStore: func(t *testing.T) Store {
			return NewMemoryStore()
		},
	})
}

func TestDemoMemoryStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewDemoMemoryStore()
	require.NoError(t, err)

	links, err := store.GetLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"link-3", "link-2", "link-1"}, linkIDs(links))

	full, err := store.GetFullLink(ctx, "link-1")
	require.NoError(t, err)
	require.NotNil(t, full)
	require.Len(t, full.Notes, 2)
	assert.Equal(t, "note-1", full.Notes[0].ID)
	assert.Equal(t, "note-2", full.Notes[1].ID)
	names := make([]string, 0, len(full.Labels))
	for _, l := range full.Labels {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Favorites", "Framework", "Svelte"}, names)

	byLabel, err := store.GetLinksByLabel(ctx, "label-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"link-2", "link-1"}, linkIDs(byLabel))

	labels, err := store.GetLabels(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, labels, 4)

	user, err := store.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", user.Email)
}

func TestMemoryStore_CreatedIDsArePrefixed(t *testing.T) {
	ctx := context.Background()
	store, err := NewDemoMemoryStore()
	require.NoError(t, err)

	link, err := store.CreateLink(ctx, "user-1", testutils.NewLinkFactory().Create())
	require.NoError(t, err)
	assert.Regexp(t, `^link-`, link.ID)

	note, err := store.CreateNote(ctx, models.NoteInput{LinkID: link.ID, Content: "n"})
	require.NoError(t, err)
	assert.Regexp(t, `^note-`, note.ID)

	label, err := store.CreateLabel(ctx, "user-1", "New")
	require.NoError(t, err)
	assert.Regexp(t, `^label-`, label.ID)
}

func TestMemoryStore_InputIsCopied(t *testing.T) {
	ctx := context.Background()
	store, err := NewDemoMemoryStore()
	require.NoError(t, err)

	description := "before"
	link, err := store.CreateLink(ctx, "user-1", models.LinkInput{URL: "https://a.test", Title: "A", Description: &description})
	require.NoError(t, err)
	description = "after"

	got, err := store.GetLinkByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "before", *got.Description)
}

func TestMemoryStore_LatencyHonoursCancellation(t *testing.T) {
	store := NewMemoryStore(WithLatency(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := store.GetLinks(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestMemoryStore_Latency(t *testing.T) {
	store := NewMemoryStore(WithLatency(20 * time.Millisecond))

	start := time.Now()
	_, err := store.GetLinks(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store, err := NewDemoMemoryStore()
	require.NoError(t, err)
	factory := testutils.NewLinkFactory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateLink(ctx, "user-1", factory.Create())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	links, err := store.GetLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 53)
}

func TestMemoryStore_LoadReplacesContents(t *testing.T) {
	ctx := context.Background()
	store, err := NewDemoMemoryStore()
	require.NoError(t, err)

	_, err = store.CreateLink(ctx, "user-1", testutils.NewLinkFactory().Create())
	require.NoError(t, err)

	ds, err := seed.Demo()
	require.NoError(t, err)
	store.Load(ds)

	links, err := store.GetLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 3)
}
