package state

import (
	"context"
	"slices"

	"linkedlist-backend/internal/database/models"
)

// LinksStore mirrors the link list
type LinksStore struct {
	*Observable[[]models.Link]
	api API
}

func NewLinksStore(api API) *LinksStore {
	return &LinksStore{
		Observable: NewObservable([]models.Link{}),
		api:        api,
	}
}

// Refresh replaces the snapshot with the server's list
func (s *LinksStore) Refresh(ctx context.Context) error {
	links, err := s.api.GetLinks(ctx)
	if err != nil {
		return err
	}
	s.Set(links)
	return nil
}

// Add creates a link and appends it to the snapshot
func (s *LinksStore) Add(ctx context.Context, in models.LinkInput) (*models.Link, error) {
	link, err := s.api.CreateLink(ctx, in)
	if err != nil {
		return nil, err
	}
	s.Update(func(links []models.Link) []models.Link {
		return append(slices.Clone(links), *link)
	})
	return link, nil
}

// Edit applies patch on the server and replaces the matching entry
func (s *LinksStore) Edit(ctx context.Context, id string, patch models.LinkPatch) (*models.Link, error) {
	link, err := s.api.UpdateLink(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.Update(func(links []models.Link) []models.Link {
		return replaceByID(links, *link, func(l models.Link) string { return l.ID })
	})
	return link, nil
}

// Remove deletes a link and filters it out of the snapshot
func (s *LinksStore) Remove(ctx context.Context, id string) error {
	if err := s.api.DeleteLink(ctx, id); err != nil {
		return err
	}
	s.Update(func(links []models.Link) []models.Link {
		return removeByID(links, id, func(l models.Link) string { return l.ID })
	})
	return nil
}

func replaceByID[T any](items []T, item T, key func(T) string) []T {
	out := slices.Clone(items)
	for i := range out {
		if key(out[i]) == key(item) {
			out[i] = item
		}
	}
	return out
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
