package state

import (
	"context"

	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/database/models"
)

// API is the remote surface the stores call. *client.Client satisfies it.
type API interface {
	GetLinks(ctx context.Context) ([]models.Link, error)
	GetFullLink(ctx context.Context, id string) (*models.LinkFull, error)
	CreateLink(ctx context.Context, in models.LinkInput) (*models.Link, error)
	UpdateLink(ctx context.Context, id string, patch models.LinkPatch) (*models.Link, error)
	DeleteLink(ctx context.Context, id string) error

	CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	GetLabels(ctx context.Context) ([]models.Label, error)
	CreateLabel(ctx context.Context, name string) (*models.Label, error)
	UpdateLabel(ctx context.Context, id, name string) (*models.Label, error)
	DeleteLabel(ctx context.Context, id string) error
	AddLabelToLink(ctx context.Context, linkID, labelID string) error
	RemoveLabelFromLink(ctx context.Context, linkID, labelID string) error
	GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error)

	Me(ctx context.Context) (*auth.MeResponse, error)
	Logout(ctx context.Context) error
}
