package service

import (
	"context"
	"fmt"
	"strings"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/logger"
	"linkedlist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LinkService provides link-related business logic
type LinkService struct {
	linkRepo      repository.LinkRepositoryInterface
	validator     *validator.Validate
	defaultUserID string
}

// Ensure LinkService implements LinkServiceInterface
var _ LinkServiceInterface = (*LinkService)(nil)

// NewLinkService creates a new LinkService. Links created without an
// authenticated user are attributed to defaultUserID.
func NewLinkService(linkRepo repository.LinkRepositoryInterface, validator *validator.Validate, defaultUserID string) *LinkService {
	return &LinkService{
		linkRepo:      linkRepo,
		validator:     validator,
		defaultUserID: defaultUserID,
	}
}

// GetLinks returns every link, newest first
func (s *LinkService) GetLinks(ctx context.Context) ([]models.Link, error) {
	links, err := s.linkRepo.GetLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return links, nil
}

// GetLinkByID returns a link or a NotFoundError
func (s *LinkService) GetLinkByID(ctx context.Context, id string) (*models.Link, error) {
	link, err := s.linkRepo.GetLinkByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	if link == nil {
		return nil, apperrors.ErrLinkNotFound
	}
	return link, nil
}

// GetLinksByUser returns the links owned by userID, or by the default user when empty
func (s *LinkService) GetLinksByUser(ctx context.Context, userID string) ([]models.Link, error) {
	links, err := s.linkRepo.GetLinksByUser(ctx, s.currentUser(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get links by user: %w", err)
	}
	return links, nil
}

func (s *LinkService) GetLinkWithNotes(ctx context.Context, id string) (*models.LinkWithNotes, error) {
	link, err := s.linkRepo.GetLinkWithNotes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link with notes: %w", err)
	}
	if link == nil {
		return nil, apperrors.ErrLinkNotFound
	}
	return link, nil
}

func (s *LinkService) GetLinkWithLabels(ctx context.Context, id string) (*models.LinkWithLabels, error) {
	link, err := s.linkRepo.GetLinkWithLabels(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link with labels: %w", err)
	}
	if link == nil {
		return nil, apperrors.ErrLinkNotFound
	}
	return link, nil
}

// GetFullLink returns a link with its notes and labels
func (s *LinkService) GetFullLink(ctx context.Context, id string) (*models.LinkFull, error) {
	link, err := s.linkRepo.GetFullLink(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get full link: %w", err)
	}
	if link == nil {
		return nil, apperrors.ErrLinkNotFound
	}
	return link, nil
}

// CreateLink validates and creates a new link owned by userID
func (s *LinkService) CreateLink(ctx context.Context, userID string, req *models.LinkInput) (*models.Link, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	req.URL = strings.TrimSpace(req.URL)
	req.Title = strings.TrimSpace(req.Title)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	owner := s.currentUser(userID)
	link, err := s.linkRepo.CreateLink(ctx, owner, *req)
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	logger.WithContext(ctx).WithField("link_id", link.ID).Debug("Link created")
	return link, nil
}

// UpdateLink applies a partial update. An unknown id yields a NotFoundError.
func (s *LinkService) UpdateLink(ctx context.Context, id string, req *models.LinkPatch) (*models.Link, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	link, err := s.linkRepo.UpdateLink(ctx, id, *req)
	if err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	if link == nil {
		return nil, apperrors.ErrLinkNotFound
	}
	return link, nil
}

// DeleteLink removes a link together with its notes and label associations
func (s *LinkService) DeleteLink(ctx context.Context, id string) error {
	deleted, err := s.linkRepo.DeleteLink(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if !deleted {
		return apperrors.ErrLinkNotFound
	}
	return nil
}

func (s *LinkService) currentUser(userID string) string {
	if strings.TrimSpace(userID) == "" {
		return s.defaultUserID
	}
	return userID
}
