package service

import (
	"context"
	"fmt"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// NoteService provides note-related business logic
type NoteService struct {
	noteRepo  repository.NoteRepositoryInterface
	validator *validator.Validate
}

// Ensure NoteService implements NoteServiceInterface
var _ NoteServiceInterface = (*NoteService)(nil)

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repository.NoteRepositoryInterface, validator *validator.Validate) *NoteService {
	return &NoteService{
		noteRepo:  noteRepo,
		validator: validator,
	}
}

// GetNotesByLink returns the notes of a link, oldest first. An unknown link has no notes.
func (s *NoteService) GetNotesByLink(ctx context.Context, linkID string) ([]models.Note, error) {
	notes, err := s.noteRepo.GetNotesByLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) GetNoteByID(ctx context.Context, id string) (*models.Note, error) {
	note, err := s.noteRepo.GetNoteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

// CreateNote validates and attaches a note to an existing link
func (s *NoteService) CreateNote(ctx context.Context, req *models.NoteInput) (*models.Note, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.CreateNote(ctx, *req)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// UpdateNote applies a partial update. An unknown id yields a NotFoundError.
func (s *NoteService) UpdateNote(ctx context.Context, id string, req *models.NotePatch) (*models.Note, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.UpdateNote(ctx, id, *req)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if note == nil {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	deleted, err := s.noteRepo.DeleteNote(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if !deleted {
		return apperrors.ErrNoteNotFound
	}
	return nil
}
