package repository

import (
	"context"
	"errors"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkRepository handles database operations for links
type LinkRepository struct {
	db *gorm.DB
}

// Ensure LinkRepository implements LinkRepositoryInterface
var _ LinkRepositoryInterface = (*LinkRepository)(nil)

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// GetLinks retrieves all links, newest first
func (r *LinkRepository) GetLinks(ctx context.Context) ([]models.Link, error) {
	links := []models.Link{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&links).Error; err != nil {
		return nil, apperrors.NewBackendError("get links", err)
	}
	return links, nil
}

// GetLinkByID retrieves a link by ID
func (r *LinkRepository) GetLinkByID(ctx context.Context, id string) (*models.Link, error) {
	return findLink(r.db.WithContext(ctx), id)
}

// GetLinksByUser retrieves the links owned by a user, newest first
func (r *LinkRepository) GetLinksByUser(ctx context.Context, userID string) ([]models.Link, error) {
	links := []models.Link{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&links).Error; err != nil {
		return nil, apperrors.NewBackendError("get links by user", err)
	}
	return links, nil
}

// GetLinkWithNotes retrieves a link and its notes
func (r *LinkRepository) GetLinkWithNotes(ctx context.Context, id string) (*models.LinkWithNotes, error) {
	db := r.db.WithContext(ctx)
	link, err := findLink(db, id)
	if err != nil || link == nil {
		return nil, err
	}
	notes, err := notesOfLink(db, id)
	if err != nil {
		return nil, err
	}
	return &models.LinkWithNotes{Link: *link, Notes: notes}, nil
}

// GetLinkWithLabels retrieves a link and its labels
func (r *LinkRepository) GetLinkWithLabels(ctx context.Context, id string) (*models.LinkWithLabels, error) {
	db := r.db.WithContext(ctx)
	link, err := findLink(db, id)
	if err != nil || link == nil {
		return nil, err
	}
	labels, err := labelsOfLink(db, id)
	if err != nil {
		return nil, err
	}
	return &models.LinkWithLabels{Link: *link, Labels: labels}, nil
}

// GetFullLink retrieves a link with its notes and labels
func (r *LinkRepository) GetFullLink(ctx context.Context, id string) (*models.LinkFull, error) {
	db := r.db.WithContext(ctx)
	link, err := findLink(db, id)
	if err != nil || link == nil {
		return nil, err
	}
	notes, err := notesOfLink(db, id)
	if err != nil {
		return nil, err
	}
	labels, err := labelsOfLink(db, id)
	if err != nil {
		return nil, err
	}
	return &models.LinkFull{Link: *link, Notes: notes, Labels: labels}, nil
}

// CreateLink inserts a new link owned by userID
func (r *LinkRepository) CreateLink(ctx context.Context, userID string, in models.LinkInput) (*models.Link, error) {
	now := models.Now()
	link := models.Link{
		UserID:      userID,
		URL:         in.URL,
		Title:       in.Title,
		Description: in.Description,
		IsPermanent: in.IsPermanent,
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, translateError("create link", "userId", err)
	}
	return &link, nil
}

// UpdateLink applies patch to a link under a row lock
func (r *LinkRepository) UpdateLink(ctx context.Context, id string, patch models.LinkPatch) (*models.Link, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var updated *models.Link
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link models.Link
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&link, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		patch.Apply(&link)
		link.UpdatedAt = models.NextUpdatedAt(link.UpdatedAt, models.Now())
		if err := tx.Save(&link).Error; err != nil {
			return err
		}
		updated = &link
		return nil
	})
	if err != nil {
		return nil, apperrors.NewBackendError("update link", err)
	}
	return updated, nil
}

// DeleteLink removes a link together with its notes and label associations
func (r *LinkRepository) DeleteLink(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("link_id = ?", id).Delete(&models.LinkLabel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Link{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperrors.NewBackendError("delete link", err)
	}
	return deleted, nil
}

func findLink(db *gorm.DB, id string) (*models.Link, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var link models.Link
	err := db.First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewBackendError("get link", err)
	}
	return &link, nil
}
