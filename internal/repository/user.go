package repository

import (
	"context"
	"errors"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewBackendError("get user", err)
	}
	return &user, nil
}

// FindOrCreateUser returns the user with id, creating it with email on first sight
func (r *UserRepository) FindOrCreateUser(ctx context.Context, id, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where(models.User{ID: id}).
		Attrs(models.User{Email: email, CreatedAt: models.Now()}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, translateError("find or create user", "email", err)
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return &user, nil
}
