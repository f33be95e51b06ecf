package repository

import (
	"context"
	"errors"
	"time"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"

	"gorm.io/gorm"
)

// SessionRepository persists login sessions
type SessionRepository struct {
	db *gorm.DB
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession inserts a session
func (r *SessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return translateError("create session", "userId", err)
	}
	return nil
}

// GetSession retrieves a session by its hashed id
func (r *SessionRepository) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewBackendError("get session", err)
	}
	return &session, nil
}

// DeleteSession removes a session; unknown ids are ignored
func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return apperrors.NewBackendError("delete session", err)
	}
	return nil
}

// DeleteExpiredSessions removes every session expired at now
func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.Session{})
	if res.Error != nil {
		return 0, apperrors.NewBackendError("delete expired sessions", res.Error)
	}
	return res.RowsAffected, nil
}
