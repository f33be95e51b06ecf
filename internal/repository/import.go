package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/database/seed"
	"linkedlist-backend/internal/logger"
)

// ImportResult counts the rows created by Import. Rows that already existed
// are skipped and not counted.
type ImportResult struct {
	Users      int
	Links      int
	Notes      int
	Labels     int
	LinkLabels int
}

// Import writes a data set through the Store operations, so it works on
// either backend. Ids are reassigned by the store; a link is considered
// present when its owner already has one with the same URL, a label when its
// owner already has one with the same name. Notes are only added to newly
// created links, which makes repeated imports idempotent.
func Import(ctx context.Context, store Store, ds *seed.DataSet) (*ImportResult, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	log := logger.WithContext(ctx)
	result := &ImportResult{}

	for _, u := range ds.Users {
		existing, err := store.GetUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user %s: %w", u.ID, err)
		}
		if existing != nil {
			continue
		}
		if _, err := store.FindOrCreateUser(ctx, u.ID, u.Email); err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.ID, err)
		}
		result.Users++
	}

	labelIDs := make(map[string]string, len(ds.Labels))
	for _, l := range ds.Labels {
		existing, err := store.GetLabels(ctx, l.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list labels of %s: %w", l.UserID, err)
		}
		idx := slices.IndexFunc(existing, func(e models.Label) bool { return strings.EqualFold(e.Name, l.Name) })
		if idx >= 0 {
			labelIDs[l.ID] = existing[idx].ID
			continue
		}
		created, err := store.CreateLabel(ctx, l.UserID, l.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create label %s: %w", l.Name, err)
		}
		labelIDs[l.ID] = created.ID
		result.Labels++
	}

	// oldest first so the store's newest-first order matches the data set
	links := slices.Clone(ds.Links)
	slices.SortStableFunc(links, func(a, b seed.Link) int { return a.CreatedAt.Compare(b.CreatedAt) })

	linkIDs := make(map[string]string, len(links))
	createdLinks := make(map[string]bool, len(links))
	for _, l := range links {
		existing, err := store.GetLinksByUser(ctx, l.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list links of %s: %w", l.UserID, err)
		}
		idx := slices.IndexFunc(existing, func(e models.Link) bool { return e.URL == l.URL })
		if idx >= 0 {
			linkIDs[l.ID] = existing[idx].ID
			continue
		}
		created, err := store.CreateLink(ctx, l.UserID, models.LinkInput{
			URL:         l.URL,
			Title:       l.Title,
			Description: l.Description,
			IsPermanent: l.IsPermanent,
			IsPublic:    l.IsPublic,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create link %s: %w", l.URL, err)
		}
		linkIDs[l.ID] = created.ID
		createdLinks[l.ID] = true
		result.Links++
	}

	notes := slices.Clone(ds.Notes)
	slices.SortStableFunc(notes, func(a, b seed.Note) int { return a.CreatedAt.Compare(b.CreatedAt) })
	for _, n := range notes {
		if !createdLinks[n.LinkID] {
			continue
		}
		if _, err := store.CreateNote(ctx, models.NoteInput{
			LinkID:      linkIDs[n.LinkID],
			Content:     n.Content,
			IsPublished: n.IsPublished,
		}); err != nil {
			return nil, fmt.Errorf("failed to create note %s: %w", n.ID, err)
		}
		result.Notes++
	}

	for _, ll := range ds.LinkLabels {
		linkID, labelID := linkIDs[ll.LinkID], labelIDs[ll.LabelID]
		current, err := store.GetLabelsByLink(ctx, linkID)
		if err != nil {
			return nil, fmt.Errorf("failed to list labels of link %s: %w", linkID, err)
		}
		if slices.ContainsFunc(current, func(l models.Label) bool { return l.ID == labelID }) {
			continue
		}
		ok, err := store.AddLabelToLink(ctx, linkID, labelID)
		if err != nil {
			return nil, fmt.Errorf("failed to attach label %s to %s: %w", labelID, linkID, err)
		}
		if ok {
			result.LinkLabels++
		}
	}

	log.WithFields(map[string]interface{}{
		"users":       result.Users,
		"links":       result.Links,
		"notes":       result.Notes,
		"labels":      result.Labels,
		"link_labels": result.LinkLabels,
	}).Info("Data set imported")
	return result, nil
}
