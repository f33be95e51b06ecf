package service

import (
	"context"
	"fmt"
	"strings"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LabelService provides label and link-label business logic
type LabelService struct {
	labelRepo     repository.LabelRepositoryInterface
	validator     *validator.Validate
	defaultUserID string
}

// Ensure LabelService implements LabelServiceInterface
var _ LabelServiceInterface = (*LabelService)(nil)

// NewLabelService creates a new LabelService
func NewLabelService(labelRepo repository.LabelRepositoryInterface, validator *validator.Validate, defaultUserID string) *LabelService {
	return &LabelService{
		labelRepo:     labelRepo,
		validator:     validator,
		defaultUserID: defaultUserID,
	}
}

// GetLabels returns the labels of userID (or the default user) ordered by name
func (s *LabelService) GetLabels(ctx context.Context, userID string) ([]models.Label, error) {
	labels, err := s.labelRepo.GetLabels(ctx, s.currentUser(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get labels: %w", err)
	}
	return labels, nil
}

func (s *LabelService) GetLabelByID(ctx context.Context, id string) (*models.Label, error) {
	label, err := s.labelRepo.GetLabelByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get label: %w", err)
	}
	if label == nil {
		return nil, apperrors.ErrLabelNotFound
	}
	return label, nil
}

// CreateLabel validates and creates a label owned by userID
func (s *LabelService) CreateLabel(ctx context.Context, userID string, req *models.LabelInput) (*models.Label, error) {
	if err := s.validateName(req); err != nil {
		return nil, err
	}

	label, err := s.labelRepo.CreateLabel(ctx, s.currentUser(userID), req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	return label, nil
}

// UpdateLabel renames a label
func (s *LabelService) UpdateLabel(ctx context.Context, id string, req *models.LabelInput) (*models.Label, error) {
	if err := s.validateName(req); err != nil {
		return nil, err
	}

	label, err := s.labelRepo.UpdateLabel(ctx, id, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to update label: %w", err)
	}
	if label == nil {
		return nil, apperrors.ErrLabelNotFound
	}
	return label, nil
}

// DeleteLabel removes a label and detaches it from every link
func (s *LabelService) DeleteLabel(ctx context.Context, id string) error {
	deleted, err := s.labelRepo.DeleteLabel(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}
	if !deleted {
		return apperrors.ErrLabelNotFound
	}
	return nil
}

// AddLabelToLink attaches a label to a link. Attaching twice is a no-op.
func (s *LabelService) AddLabelToLink(ctx context.Context, linkID, labelID string) error {
	ok, err := s.labelRepo.AddLabelToLink(ctx, linkID, labelID)
	if err != nil {
		return fmt.Errorf("failed to add label to link: %w", err)
	}
	if !ok {
		return apperrors.NewNotFoundError("Link or label")
	}
	return nil
}

// RemoveLabelFromLink detaches a label from a link
func (s *LabelService) RemoveLabelFromLink(ctx context.Context, linkID, labelID string) error {
	ok, err := s.labelRepo.RemoveLabelFromLink(ctx, linkID, labelID)
	if err != nil {
		return fmt.Errorf("failed to remove label from link: %w", err)
	}
	if !ok {
		return apperrors.NewNotFoundError("Link label")
	}
	return nil
}

func (s *LabelService) GetLabelsByLink(ctx context.Context, linkID string) ([]models.Label, error) {
	labels, err := s.labelRepo.GetLabelsByLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels by link: %w", err)
	}
	return labels, nil
}

func (s *LabelService) GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error) {
	links, err := s.labelRepo.GetLinksByLabel(ctx, labelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get links by label: %w", err)
	}
	return links, nil
}

func (s *LabelService) validateName(req *models.LabelInput) error {
	if req == nil {
		return apperrors.NewValidationError("", "request body is required")
	}
	req.Name = strings.TrimSpace(req.Name)
	return validate(s.validator, req)
}

func (s *LabelService) currentUser(userID string) string {
	if strings.TrimSpace(userID) == "" {
		return s.defaultUserID
	}
	return userID
}
