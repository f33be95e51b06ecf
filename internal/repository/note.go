package repository

import (
	"context"
	"errors"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *gorm.DB
}

// Ensure NoteRepository implements NoteRepositoryInterface
var _ NoteRepositoryInterface = (*NoteRepository)(nil)

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// GetNotesByLink retrieves the notes of a link, oldest first
func (r *NoteRepository) GetNotesByLink(ctx context.Context, linkID string) ([]models.Note, error) {
	return notesOfLink(r.db.WithContext(ctx), linkID)
}

// GetNoteByID retrieves a note by ID
func (r *NoteRepository) GetNoteByID(ctx context.Context, id string) (*models.Note, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var note models.Note
	err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewBackendError("get note", err)
	}
	return &note, nil
}

// CreateNote inserts a new note
func (r *NoteRepository) CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error) {
	if !isUUID(in.LinkID) {
		return nil, apperrors.NewValidationError("linkId", "link does not exist")
	}
	now := models.Now()
	note := models.Note{
		LinkID:      in.LinkID,
		Content:     in.Content,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&note).Error; err != nil {
		return nil, translateError("create note", "linkId", err)
	}
	return &note, nil
}

// UpdateNote applies patch to a note under a row lock
func (r *NoteRepository) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var updated *models.Note
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var note models.Note
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&note, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		patch.Apply(&note)
		note.UpdatedAt = models.NextUpdatedAt(note.UpdatedAt, models.Now())
		if err := tx.Save(&note).Error; err != nil {
			return err
		}
		updated = &note
		return nil
	})
	if err != nil {
		return nil, apperrors.NewBackendError("update note", err)
	}
	return updated, nil
}

// DeleteNote removes a note by ID
func (r *NoteRepository) DeleteNote(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	if res.Error != nil {
		return false, apperrors.NewBackendError("delete note", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func notesOfLink(db *gorm.DB, linkID string) ([]models.Note, error) {
	notes := []models.Note{}
	if !isUUID(linkID) {
		return notes, nil
	}
	if err := db.Where("link_id = ?", linkID).Order("created_at ASC").Find(&notes).Error; err != nil {
		return nil, apperrors.NewBackendError("get notes", err)
	}
	return notes, nil
}
