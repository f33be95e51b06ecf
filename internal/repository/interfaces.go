package repository

import (
	"context"
	"time"

	"linkedlist-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Lookups return nil (or false) for unknown ids; errors are reserved for
// backend failures and reference violations.

// LinkRepositoryInterface defines the link operations of a backend
type LinkRepositoryInterface interface {
	GetLinks(ctx context.Context) ([]models.Link, error)
	GetLinkByID(ctx context.Context, id string) (*models.Link, error)
	GetLinksByUser(ctx context.Context, userID string) ([]models.Link, error)
	GetLinkWithNotes(ctx context.Context, id string) (*models.LinkWithNotes, error)
	GetLinkWithLabels(ctx context.Context, id string) (*models.LinkWithLabels, error)
	GetFullLink(ctx context.Context, id string) (*models.LinkFull, error)
	CreateLink(ctx context.Context, userID string, in models.LinkInput) (*models.Link, error)
	UpdateLink(ctx context.Context, id string, patch models.LinkPatch) (*models.Link, error)
	DeleteLink(ctx context.Context, id string) (bool, error)
}

// NoteRepositoryInterface defines the note operations of a backend
type NoteRepositoryInterface interface {
	GetNotesByLink(ctx context.Context, linkID string) ([]models.Note, error)
	GetNoteByID(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) (bool, error)
}

// LabelRepositoryInterface defines the label and link-label operations of a backend
type LabelRepositoryInterface interface {
	GetLabels(ctx context.Context, userID string) ([]models.Label, error)
	GetLabelByID(ctx context.Context, id string) (*models.Label, error)
	CreateLabel(ctx context.Context, userID, name string) (*models.Label, error)
	UpdateLabel(ctx context.Context, id, name string) (*models.Label, error)
	DeleteLabel(ctx context.Context, id string) (bool, error)
	AddLabelToLink(ctx context.Context, linkID, labelID string) (bool, error)
	RemoveLabelFromLink(ctx context.Context, linkID, labelID string) (bool, error)
	GetLabelsByLink(ctx context.Context, linkID string) ([]models.Label, error)
	GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error)
}

// UserRepositoryInterface defines the user operations of a backend
type UserRepositoryInterface interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	FindOrCreateUser(ctx context.Context, id, email string) (*models.User, error)
}

// SessionRepositoryInterface defines durable session storage
type SessionRepositoryInterface interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Store is the full persistence contract implemented by MemoryStore and PostgresStore.
type Store interface {
	LinkRepositoryInterface
	NoteRepositoryInterface
	LabelRepositoryInterface
	UserRepositoryInterface
	SessionRepositoryInterface

	Ping(ctx context.Context) error
	Close() error
}
