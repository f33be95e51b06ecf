package repository

import (
	"context"
	"errors"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LabelRepository handles database operations for labels and link-label associations
type LabelRepository struct {
	db *gorm.DB
}

// Ensure LabelRepository implements LabelRepositoryInterface
var _ LabelRepositoryInterface = (*LabelRepository)(nil)

// NewLabelRepository creates a new label repository
func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// GetLabels retrieves the labels of a user ordered by name
func (r *LabelRepository) GetLabels(ctx context.Context, userID string) ([]models.Label, error) {
	labels := []models.Label{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC, created_at ASC").
		Find(&labels).Error
	if err != nil {
		return nil, apperrors.NewBackendError("get labels", err)
	}
	return labels, nil
}

// GetLabelByID retrieves a label by ID
func (r *LabelRepository) GetLabelByID(ctx context.Context, id string) (*models.Label, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var label models.Label
	err := r.db.WithContext(ctx).First(&label, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewBackendError("get label", err)
	}
	return &label, nil
}

// CreateLabel inserts a new label owned by userID
func (r *LabelRepository) CreateLabel(ctx context.Context, userID, name string) (*models.Label, error) {
	label := models.Label{UserID: userID, Name: name, CreatedAt: models.Now()}
	if err := r.db.WithContext(ctx).Create(&label).Error; err != nil {
		return nil, translateError("create label", "userId", err)
	}
	return &label, nil
}

// UpdateLabel renames a label
func (r *LabelRepository) UpdateLabel(ctx context.Context, id, name string) (*models.Label, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var updated *models.Label
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var label models.Label
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&label, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&label).Update("name", name).Error; err != nil {
			return err
		}
		label.Name = name
		updated = &label
		return nil
	})
	if err != nil {
		return nil, apperrors.NewBackendError("update label", err)
	}
	return updated, nil
}

// DeleteLabel removes a label and its link associations
func (r *LabelRepository) DeleteLabel(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("label_id = ?", id).Delete(&models.LinkLabel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Label{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperrors.NewBackendError("delete label", err)
	}
	return deleted, nil
}

// AddLabelToLink associates a label with a link. Adding an existing pair succeeds
// without duplicating it; unknown links or labels report false.
func (r *LabelRepository) AddLabelToLink(ctx context.Context, linkID, labelID string) (bool, error) {
	if !isUUID(linkID) || !isUUID(labelID) {
		return false, nil
	}
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var links, labels int64
		if err := tx.Model(&models.Link{}).Where("id = ?", linkID).Count(&links).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Label{}).Where("id = ?", labelID).Count(&labels).Error; err != nil {
			return err
		}
		if links == 0 || labels == 0 {
			return nil
		}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.LinkLabel{LinkID: linkID, LabelID: labelID}).Error
		if err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, apperrors.NewBackendError("add label to link", err)
	}
	return added, nil
}

// RemoveLabelFromLink deletes an association, reporting false when it did not exist
func (r *LabelRepository) RemoveLabelFromLink(ctx context.Context, linkID, labelID string) (bool, error) {
	if !isUUID(linkID) || !isUUID(labelID) {
		return false, nil
	}
	res := r.db.WithContext(ctx).
		Where("link_id = ? AND label_id = ?", linkID, labelID).
		Delete(&models.LinkLabel{})
	if res.Error != nil {
		return false, apperrors.NewBackendError("remove label from link", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetLabelsByLink retrieves the labels attached to a link
func (r *LabelRepository) GetLabelsByLink(ctx context.Context, linkID string) ([]models.Label, error) {
	return labelsOfLink(r.db.WithContext(ctx), linkID)
}

// GetLinksByLabel retrieves the links carrying a label, newest first
func (r *LabelRepository) GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error) {
	links := []models.Link{}
	if !isUUID(labelID) {
		return links, nil
	}
	err := r.db.WithContext(ctx).
		Joins("JOIN link_label ON link_label.link_id = link.id").
		Where("link_label.label_id = ?", labelID).
		Order("link.created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, apperrors.NewBackendError("get links by label", err)
	}
	return links, nil
}

func labelsOfLink(db *gorm.DB, linkID string) ([]models.Label, error) {
	labels := []models.Label{}
	if !isUUID(linkID) {
		return labels, nil
	}
	err := db.
		Joins("JOIN link_label ON link_label.label_id = label.id").
		Where("link_label.link_id = ?", linkID).
		Order("label.name ASC, label.created_at ASC").
		Find(&labels).Error
	if err != nil {
		return nil, apperrors.NewBackendError("get labels by link", err)
	}
	return labels, nil
}
