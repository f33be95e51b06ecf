package service

import (
	"context"

	"linkedlist-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LinkServiceInterface defines the interface for link service
type LinkServiceInterface interface {
	GetLinks(ctx context.Context) ([]models.Link, error)
	GetLinkByID(ctx context.Context, id string) (*models.Link, error)
	GetLinksByUser(ctx context.Context, userID string) ([]models.Link, error)
	GetLinkWithNotes(ctx context.Context, id string) (*models.LinkWithNotes, error)
	GetLinkWithLabels(ctx context.Context, id string) (*models.LinkWithLabels, error)
	GetFullLink(ctx context.Context, id string) (*models.LinkFull, error)
	CreateLink(ctx context.Context, userID string, req *models.LinkInput) (*models.Link, error)
	UpdateLink(ctx context.Context, id string, req *models.LinkPatch) (*models.Link, error)
	DeleteLink(ctx context.Context, id string) error
}

// NoteServiceInterface defines the interface for note service
type NoteServiceInterface interface {
	GetNotesByLink(ctx context.Context, linkID string) ([]models.Note, error)
	GetNoteByID(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, req *models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, req *models.NotePatch) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// LabelServiceInterface defines the interface for label service
type LabelServiceInterface interface {
	GetLabels(ctx context.Context, userID string) ([]models.Label, error)
	GetLabelByID(ctx context.Context, id string) (*models.Label, error)
	CreateLabel(ctx context.Context, userID string, req *models.LabelInput) (*models.Label, error)
	UpdateLabel(ctx context.Context, id string, req *models.LabelInput) (*models.Label, error)
	DeleteLabel(ctx context.Context, id string) error
	AddLabelToLink(ctx context.Context, linkID, labelID string) error
	RemoveLabelFromLink(ctx context.Context, linkID, labelID string) error
	GetLabelsByLink(ctx context.Context, linkID string) ([]models.Label, error)
	GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error)
}
