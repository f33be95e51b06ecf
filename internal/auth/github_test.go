package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/repository"
	"linkedlist-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGitHubServer imitates the OAuth and REST endpoints of a GitHub Enterprise host
func newGitHubServer(t *testing.T, emails []map[string]interface{}) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		if r.Form.Get("code") != "good-code" {
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad_verification_code"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "token_type": "bearer"})
	})
	mux.HandleFunc("/api/v3/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 42, "login": "octocat"})
	})
	mux.HandleFunc("/api/v3/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(emails)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func enterpriseConfig(baseURL string) *AuthConfig {
	config := testConfig()
	config.ClientID = "client-id"
	config.ClientSecret = "client-secret"
	config.EnterpriseBaseURL = baseURL
	return config
}

func TestGitHubClient_AuthCodeURL(t *testing.T) {
	client := NewGitHubClient(&AuthConfig{
		ClientID:    "client-id",
		RedirectURI: "http://localhost:5173/auth/callback/github",
	})

	authURL, err := url.Parse(client.AuthCodeURL("state-123"))
	require.NoError(t, err)

	assert.Equal(t, "github.com", authURL.Host)
	assert.Equal(t, "/login/oauth/authorize", authURL.Path)
	q := authURL.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "user:email", q.Get("scope"))
	assert.Equal(t, "http://localhost:5173/auth/callback/github", q.Get("redirect_uri"))
}

func TestGitHubClient_EnterpriseFlow(t *testing.T) {
	server := newGitHubServer(t, []map[string]interface{}{
		{"email": "work@example.com", "primary": false},
		{"email": "home@example.com", "primary": true},
	})
	client := NewGitHubClient(enterpriseConfig(server.URL))
	ctx := context.Background()

	assert.Contains(t, client.AuthCodeURL("s"), server.URL+"/login/oauth/authorize")

	token, err := client.Exchange(ctx, "good-code")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	profile, err := client.GetUserProfile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.ID)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "home@example.com", profile.Email)
	assert.Equal(t, "github-42", profile.UserID())
}

func TestGitHubClient_ExchangeFailure(t *testing.T) {
	server := newGitHubServer(t, nil)
	client := NewGitHubClient(enterpriseConfig(server.URL))

	_, err := client.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestGitHubClient_InvalidToken(t *testing.T) {
	server := newGitHubServer(t, nil)
	client := NewGitHubClient(enterpriseConfig(server.URL))

	_, err := client.GetUserProfile(context.Background(), "wrong")
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestGitHubClient_NoEmails(t *testing.T) {
	server := newGitHubServer(t, []map[string]interface{}{})
	client := NewGitHubClient(enterpriseConfig(server.URL))

	profile, err := client.GetUserProfile(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "octocat@github.com", profile.Email)
}

func TestCallback_ProviderErrorBodyNotForwarded(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("UPSTREAM-DETAIL db=gh-prod-7"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	config := enterpriseConfig(server.URL)
	store := repository.NewMemoryStore()
	service := NewAuthService(config, NewGitHubClient(config), NewStoreSessionManager(store, store, config.SessionTTL), store)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/auth/callback/github", NewAuthHandler(service).Callback)

	stateCookie := &http.Cookie{Name: StateCookieName, Value: "s"}
	w := httpSuite.MakeRequestWithCookies(http.MethodGet, "/auth/callback/github?code=good-code&state=s", nil, stateCookie)

	require.Equal(t, http.StatusFound, w.Code)
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/login", location.Path)
	assert.Equal(t, "Authentication failed: could not sign in", location.Query().Get("error"))
	assert.NotContains(t, w.Header().Get("Location"), "UPSTREAM")
	assert.Nil(t, testutils.ResponseCookie(w, SessionCookieName))
}
