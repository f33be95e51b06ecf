package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "link"}
		assert.Equal(t, "link not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "note"}
		err2 := &NotFoundError{Entity: "note"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrLinkNotFound, ErrLabelNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		err := fmt.Errorf("get link: %w", ErrLinkNotFound)
		assert.True(t, errors.Is(err, ErrLinkNotFound))
		assert.True(t, IsNotFound(err))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrNoteNotFound))
		assert.False(t, IsNotFound(ErrInvalidState))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "url", Message: "invalid format"}
		assert.Equal(t, "validation error: url - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("Detail drops the prefix", func(t *testing.T) {
		var validationErr *ValidationError
		require.ErrorAs(t, fmt.Errorf("create link: %w", NewValidationError("url", "must be a valid URL")), &validationErr)
		assert.Equal(t, "url must be a valid URL", validationErr.Detail())
		assert.Equal(t, "invalid format", (&ValidationError{Message: "invalid format"}).Detail())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("title", "required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrLinkNotFound))
	})
}

func TestBackendError(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("wraps cause", func(t *testing.T) {
		err := NewBackendError("get links", cause)
		assert.Equal(t, "backend get links: connection refused", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsBackend(err))
		assert.True(t, IsBackend(fmt.Errorf("service: %w", err)))
	})

	t.Run("nil cause", func(t *testing.T) {
		assert.NoError(t, NewBackendError("noop", nil))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.False(t, IsBackend(cause))
	})
}

func TestAuthenticationAndConfiguration(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidState))
	assert.True(t, IsAuthentication(NewAuthenticationError("denied")))
	assert.False(t, IsAuthentication(ErrGitHubNotConfigured))

	assert.True(t, IsConfiguration(ErrSessionSecretNotSet))
	assert.True(t, IsConfiguration(NewConfigurationError("missing")))
	assert.False(t, IsConfiguration(ErrLinkNotFound))
}
