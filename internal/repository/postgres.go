package repository

import (
	"context"
	"errors"

	"linkedlist-backend/internal/database"
	apperrors "linkedlist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostgresStore implements Store over a gorm Postgres connection.
type PostgresStore struct {
	*LinkRepository
	*NoteRepository
	*LabelRepository
	*UserRepository
	*SessionRepository

	db *gorm.DB
}

// Ensure PostgresStore implements Store
var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a store over an initialized database
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{
		LinkRepository:    NewLinkRepository(db),
		NoteRepository:    NewNoteRepository(db),
		LabelRepository:   NewLabelRepository(db),
		UserRepository:    NewUserRepository(db),
		SessionRepository: NewSessionRepository(db),
		db:                db,
	}
}

// DB exposes the underlying connection
func (s *PostgresStore) DB() *gorm.DB {
	return s.db
}

// Ping checks the database connection
func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return apperrors.NewBackendError("ping", err)
	}
	return apperrors.NewBackendError("ping", sqlDB.PingContext(ctx))
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	return database.Close(s.db)
}

// isUUID reports whether id can address a uuid primary key. Other ids cannot
// exist in the database, so lookups short-circuit to "absent".
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// translateError maps constraint violations to validation errors and
// everything else to a BackendError.
func translateError(op, field string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewValidationError(field, "referenced row does not exist")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewValidationError(field, "already exists")
	}
	return apperrors.NewBackendError(op, err)
}
