package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	apperrors "linkedlist-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Provider is the OAuth identity provider used by the login flow
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error)
}

// UserProfile represents a GitHub user profile
type UserProfile struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
}

// UserID is the provider-qualified id under which the user is stored
func (p *UserProfile) UserID() string {
	return fmt.Sprintf("github-%d", p.ID)
}

// GitHubClient wraps the GitHub OAuth and API clients
type GitHubClient struct {
	config *AuthConfig
	oauth  *oauth2.Config
}

// Ensure GitHubClient implements Provider
var _ Provider = (*GitHubClient)(nil)

// NewGitHubClient creates a new GitHub client
func NewGitHubClient(config *AuthConfig) *GitHubClient {
	return &GitHubClient{
		config: config,
		oauth:  newOAuth2Config(config),
	}
}

func newOAuth2Config(config *AuthConfig) *oauth2.Config {
	var endpoint oauth2.Endpoint

	if base := strings.TrimRight(config.EnterpriseBaseURL, "/"); base != "" {
		// GitHub Enterprise Server endpoints
		endpoint = oauth2.Endpoint{
			AuthURL:  base + "/login/oauth/authorize",
			TokenURL: base + "/login/oauth/access_token",
		}
	} else {
		endpoint = oauth2.Endpoint{
			AuthURL:  "https://github.com/login/oauth/authorize",
			TokenURL: "https://github.com/login/oauth/access_token",
		}
	}

	return &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURI,
		Scopes:       []string{"user:email"},
		Endpoint:     endpoint,
	}
}

// AuthCodeURL returns the provider authorization URL for state
func (c *GitHubClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token
func (c *GitHubClient) Exchange(ctx context.Context, code string) (string, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code for token: %w", err)
	}
	if token.AccessToken == "" {
		return "", apperrors.ErrMissingAccessToken
	}
	return token.AccessToken, nil
}

// GetUserProfile fetches the user and their email addresses from the GitHub API
func (c *GitHubClient) GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	client, err := c.apiClient(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, apperrors.NewAuthenticationError("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		// Email listing needs the user:email scope; fall back to the login address
		emails = nil
	}

	return &UserProfile{
		ID:    user.GetID(),
		Login: user.GetLogin(),
		Email: chooseEmail(emails, user.GetLogin()),
	}, nil
}

func (c *GitHubClient) apiClient(ctx context.Context, accessToken string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	tc := oauth2.NewClient(ctx, ts)

	if base := c.config.EnterpriseBaseURL; base != "" {
		client, err := github.NewEnterpriseClient(base, base, tc)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub enterprise URL: %w", err)
		}
		return client, nil
	}
	return github.NewClient(tc), nil
}

// chooseEmail picks the primary address, else the first listed, else <login>@github.com
func chooseEmail(emails []*github.UserEmail, login string) string {
	for _, email := range emails {
		if email.GetPrimary() && email.GetEmail() != "" {
			return email.GetEmail()
		}
	}
	for _, email := range emails {
		if email.GetEmail() != "" {
			return email.GetEmail()
		}
	}
	return login + "@github.com"
}
