package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Detail is the user-facing form of the error, without the "validation error" prefix
func (e *ValidationError) Detail() string {
	if e.Field != "" {
		return e.Field + " " + e.Message
	}
	return e.Message
}

// BackendError wraps a failure of the persistence layer. The cause is kept for
// logging and must never be written to a response.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrLinkNotFound    = &NotFoundError{Entity: "link"}
	ErrNoteNotFound    = &NotFoundError{Entity: "note"}
	ErrLabelNotFound   = &NotFoundError{Entity: "label"}
	ErrSessionNotFound = &NotFoundError{Entity: "session"}
)

// Authentication Errors
var (
	ErrMissingOAuthParams = errors.New("missing code or state")
	ErrInvalidState       = &AuthenticationError{Message: "invalid OAuth state"}
	ErrMissingAccessToken = &AuthenticationError{Message: "no access token returned by provider"}
	ErrNotAuthenticated   = &AuthenticationError{Message: "authentication required"}
	ErrInvalidSession     = &AuthenticationError{Message: "invalid session token"}
	ErrSessionExpired     = &AuthenticationError{Message: "session expired"}
)

// Configuration Errors
var (
	ErrGitHubNotConfigured    = &ConfigurationError{Message: "GITHUB_CLIENT_ID and GITHUB_CLIENT_SECRET must be set"}
	ErrSessionSecretNotSet    = &ConfigurationError{Message: "SESSION_SECRET must be set for stateless sessions"}
	ErrRedisURLNotSet         = &ConfigurationError{Message: "REDIS_URL must be set for redis sessions"}
	ErrUnsupportedSessionMode = &ConfigurationError{Message: "unsupported SESSION_MODE"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBackend checks if an error is a BackendError
func IsBackend(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBackendError wraps err as a BackendError. A nil err yields nil.
func NewBackendError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
