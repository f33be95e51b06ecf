package state

import (
	"context"
	"slices"

	"linkedlist-backend/internal/database/models"
)

// LabelsStore mirrors the current user's labels
type LabelsStore struct {
	*Observable[[]models.Label]
	api API
}

func NewLabelsStore(api API) *LabelsStore {
	return &LabelsStore{
		Observable: NewObservable([]models.Label{}),
		api:        api,
	}
}

func (s *LabelsStore) Refresh(ctx context.Context) error {
	labels, err := s.api.GetLabels(ctx)
	if err != nil {
		return err
	}
	s.Set(labels)
	return nil
}

func (s *LabelsStore) Add(ctx context.Context, name string) (*models.Label, error) {
	label, err := s.api.CreateLabel(ctx, name)
	if err != nil {
		return nil, err
	}
	s.Update(func(labels []models.Label) []models.Label {
		return append(slices.Clone(labels), *label)
	})
	return label, nil
}

// Rename changes a label's name on the server and in the snapshot
func (s *LabelsStore) Rename(ctx context.Context, id, name string) (*models.Label, error) {
	label, err := s.api.UpdateLabel(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.Update(func(labels []models.Label) []models.Label {
		return replaceByID(labels, *label, labelKey)
	})
	return label, nil
}

func (s *LabelsStore) Remove(ctx context.Context, id string) error {
	if err := s.api.DeleteLabel(ctx, id); err != nil {
		return err
	}
	s.Update(func(labels []models.Label) []models.Label {
		return removeByID(labels, id, labelKey)
	})
	return nil
}

func labelKey(l models.Label) string { return l.ID }

// SelectedLabels is the set of label ids used to filter links, in selection order
type SelectedLabels struct {
	*Observable[[]string]
}

func NewSelectedLabels() *SelectedLabels {
	return &SelectedLabels{Observable: NewObservable([]string{})}
}

// Toggle adds id to the selection, or removes it if already selected
func (s *SelectedLabels) Toggle(id string) {
	s.Update(func(ids []string) []string {
		if slices.Contains(ids, id) {
			return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
		}
		return append(slices.Clone(ids), id)
	})
}

func (s *SelectedLabels) Clear() {
	s.Set([]string{})
}
