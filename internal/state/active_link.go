package state

import (
	"context"
	"errors"
	"slices"

	"linkedlist-backend/internal/database/models"
)

// ErrNoActiveLink is returned by note and label operations when nothing is loaded
var ErrNoActiveLink = errors.New("no active link")

// ActiveLinkStore holds the link open in the detail view, or nil
type ActiveLinkStore struct {
	*Observable[*models.LinkFull]
	api API
}

func NewActiveLinkStore(api API) *ActiveLinkStore {
	return &ActiveLinkStore{
		Observable: NewObservable[*models.LinkFull](nil),
		api:        api,
	}
}

// Load fetches a link with its notes and labels and makes it active
func (s *ActiveLinkStore) Load(ctx context.Context, id string) (*models.LinkFull, error) {
	link, err := s.api.GetFullLink(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Set(link)
	return link, nil
}

func (s *ActiveLinkStore) Clear() {
	s.Set(nil)
}

func (s *ActiveLinkStore) activeID() (string, error) {
	link := s.Get()
	if link == nil {
		return "", ErrNoActiveLink
	}
	return link.ID, nil
}

// patch copies the active link before fn edits it so published snapshots stay untouched
func (s *ActiveLinkStore) patch(fn func(*models.LinkFull)) {
	s.Update(func(link *models.LinkFull) *models.LinkFull {
		if link == nil {
			return nil
		}
		next := *link
		next.Notes = slices.Clone(link.Notes)
		next.Labels = slices.Clone(link.Labels)
		fn(&next)
		return &next
	})
}

// AddNote creates an unpublished note on the active link
func (s *ActiveLinkStore) AddNote(ctx context.Context, content string) (*models.Note, error) {
	linkID, err := s.activeID()
	if err != nil {
		return nil, err
	}
	note, err := s.api.CreateNote(ctx, models.NoteInput{LinkID: linkID, Content: content})
	if err != nil {
		return nil, err
	}
	s.patch(func(link *models.LinkFull) {
		if link.ID == note.LinkID {
			link.Notes = append(link.Notes, *note)
		}
	})
	return note, nil
}

// UpdateNote changes a note's content
func (s *ActiveLinkStore) UpdateNote(ctx context.Context, noteID, content string) (*models.Note, error) {
	note, err := s.api.UpdateNote(ctx, noteID, models.NotePatch{Content: &content})
	if err != nil {
		return nil, err
	}
	s.patch(func(link *models.LinkFull) {
		link.Notes = replaceByID(link.Notes, *note, func(n models.Note) string { return n.ID })
	})
	return note, nil
}

func (s *ActiveLinkStore) RemoveNote(ctx context.Context, noteID string) error {
	if err := s.api.DeleteNote(ctx, noteID); err != nil {
		return err
	}
	s.patch(func(link *models.LinkFull) {
		link.Notes = removeByID(link.Notes, noteID, func(n models.Note) string { return n.ID })
	})
	return nil
}

// AddLabel attaches a label and reloads the link to pick up the label's data
func (s *ActiveLinkStore) AddLabel(ctx context.Context, labelID string) error {
	linkID, err := s.activeID()
	if err != nil {
		return err
	}
	if err := s.api.AddLabelToLink(ctx, linkID, labelID); err != nil {
		return err
	}
	_, err = s.Load(ctx, linkID)
	return err
}

func (s *ActiveLinkStore) RemoveLabel(ctx context.Context, labelID string) error {
	linkID, err := s.activeID()
	if err != nil {
		return err
	}
	if err := s.api.RemoveLabelFromLink(ctx, linkID, labelID); err != nil {
		return err
	}
	s.patch(func(link *models.LinkFull) {
		link.Labels = removeByID(link.Labels, labelID, labelKey)
	})
	return nil
}
