package auth

import (
	"context"
	"fmt"

	"linkedlist-backend/internal/database/models"
	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/repository"
)

// LoginResult is the outcome of a completed OAuth callback
type LoginResult struct {
	Token   string
	Session *models.Session
	User    *models.User
}

// AuthService runs the GitHub login flow and manages sessions
type AuthService struct {
	config   *AuthConfig
	provider Provider
	sessions SessionManager
	users    repository.UserRepositoryInterface
}

// NewAuthService creates a new authentication service. provider may be nil
// when GitHub credentials are not configured; login then fails with a
// ConfigurationError while session handling keeps working.
func NewAuthService(config *AuthConfig, provider Provider, sessions SessionManager, users repository.UserRepositoryInterface) *AuthService {
	return &AuthService{
		config:   config,
		provider: provider,
		sessions: sessions,
		users:    users,
	}
}

// Config returns the auth configuration
func (s *AuthService) Config() *AuthConfig {
	return s.config
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(18)
}

// GetAuthURL returns the provider authorization URL carrying state
func (s *AuthService) GetAuthURL(state string) (string, error) {
	if s.provider == nil {
		return "", apperrors.ErrGitHubNotConfigured
	}
	return s.provider.AuthCodeURL(state), nil
}

// HandleCallback checks the state, exchanges the code, finds or creates the
// user and mints a session for them.
func (s *AuthService) HandleCallback(ctx context.Context, code, state, storedState string) (*LoginResult, error) {
	if code == "" || state == "" {
		return nil, apperrors.ErrMissingOAuthParams
	}
	if storedState == "" || state != storedState {
		return nil, apperrors.ErrInvalidState
	}
	if s.provider == nil {
		return nil, apperrors.ErrGitHubNotConfigured
	}

	accessToken, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := s.provider.GetUserProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindOrCreateUser(ctx, profile.UserID(), profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create user: %w", err)
	}

	token, session, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResult{Token: token, Session: session, User: user}, nil
}

// ValidateSession resolves a session token to the identity it belongs to
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidSession
	}
	return s.sessions.Validate(ctx, token)
}

// Logout invalidates the session of identity
func (s *AuthService) Logout(ctx context.Context, identity *Identity) error {
	if identity == nil || identity.Session == nil {
		return nil
	}
	return s.sessions.Invalidate(ctx, identity.Session)
}
