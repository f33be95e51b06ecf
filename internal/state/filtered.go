package state

import (
	"context"
	"sync"

	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/logger"

	"golang.org/x/sync/errgroup"
)

// FilteredLinksStore is derived from a LinksStore and a label selection.
// With nothing selected it mirrors the links; otherwise it holds the union
// of the links carrying any selected label.
type FilteredLinksStore struct {
	*Observable[[]models.Link]
	api      API
	links    *LinksStore
	selected *SelectedLabels
	ctx      context.Context

	mu    sync.Mutex
	unsub []func()
}

// NewFilteredLinksStore subscribes to links and selected and computes the
// first snapshot immediately. ctx bounds the fetches made on later changes.
func NewFilteredLinksStore(ctx context.Context, api API, links *LinksStore, selected *SelectedLabels) *FilteredLinksStore {
	f := &FilteredLinksStore{
		Observable: NewObservable([]models.Link{}),
		api:        api,
		links:      links,
		selected:   selected,
		ctx:        ctx,
	}
	f.unsub = append(f.unsub,
		links.Subscribe(func([]models.Link) { _ = f.Refresh(f.ctx) }),
		selected.Subscribe(func([]string) { _ = f.Refresh(f.ctx) }),
	)
	return f
}

// Refresh recomputes the snapshot. On a fetch error the snapshot falls back
// to all links and the error is returned.
func (f *FilteredLinksStore) Refresh(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	base := f.links.Get()
	ids := f.selected.Get()
	if len(ids) == 0 {
		f.Set(base)
		return nil
	}

	results := make([][]models.Link, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			links, err := f.api.GetLinksByLabel(gctx, id)
			if err != nil {
				return err
			}
			results[i] = links
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to filter links by label, showing all links")
		f.Set(base)
		return err
	}

	f.Set(union(base, results))
	return nil
}

// Close stops following the source stores
func (f *FilteredLinksStore) Close() {
	for _, fn := range f.unsub {
		fn()
	}
}

// union merges sets in order, keeping each id once and only ids present in base
func union(base []models.Link, sets [][]models.Link) []models.Link {
	known := make(map[string]models.Link, len(base))
	for _, l := range base {
		known[l.ID] = l
	}

	seen := make(map[string]struct{})
	out := make([]models.Link, 0)
	for _, set := range sets {
		for _, l := range set {
			if _, dup := seen[l.ID]; dup {
				continue
			}
			current, ok := known[l.ID]
			if !ok {
				continue
			}
			seen[l.ID] = struct{}{}
			out = append(out, current)
		}
	}
	return out
}
