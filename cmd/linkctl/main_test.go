package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linkedlist-backend/internal/api/routes"
	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/config"
	"linkedlist-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *repository.MemoryStore, auth.SessionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewDemoMemoryStore()
	require.NoError(t, err)

	authConfig := &auth.AuthConfig{SessionMode: auth.SessionModeStore, SessionTTL: time.Hour, LoginPath: "/login", PostLoginRedirect: "/"}
	sessions := auth.NewStoreSessionManager(store, store, time.Hour)
	authService := auth.NewAuthService(authConfig, nil, sessions, store)

	server := httptest.NewServer(routes.SetupRoutes(store, authService, &config.Config{DefaultUserID: "user-1"}))
	t.Cleanup(server.Close)
	return server, store, sessions
}

func runCmd(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), append(args, "--api="+server.URL), &out)
	return out.String(), err
}

func TestRun(t *testing.T) {
	server, store, sessions := newTestServer(t)

	t.Run("links", func(t *testing.T) {
		out, err := runCmd(t, server, "links")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[1], "link-3"))
		assert.Contains(t, lines[3], "permanent,public")
	})

	t.Run("links filtered by label", func(t *testing.T) {
		out, err := runCmd(t, server, "links", "--label=label-3", "--label=label-4")
		require.NoError(t, err)
		assert.Contains(t, out, "link-3")
		assert.Contains(t, out, "link-1")
		assert.NotContains(t, out, "link-2")
	})

	t.Run("show", func(t *testing.T) {
		out, err := runCmd(t, server, "show", "link-1")
		require.NoError(t, err)
		assert.Contains(t, out, "https://svelte.dev")
		assert.Contains(t, out, "labels: ")
		assert.Contains(t, out, "* Svelte is really easy")
	})

	t.Run("add, note, tag and remove", func(t *testing.T) {
		out, err := runCmd(t, server, "add", "https://go.dev", "Go", "--description=The Go site", "--public")
		require.NoError(t, err)
		linkID := strings.Fields(out)[0]
		assert.True(t, strings.HasPrefix(linkID, "link-"))

		_, err = runCmd(t, server, "note", linkID, "generics landed in 1.18")
		require.NoError(t, err)

		out, err = runCmd(t, server, "tag", linkID, "label-4")
		require.NoError(t, err)
		assert.Contains(t, out, "1 label(s)")

		out, err = runCmd(t, server, "untag", linkID, "label-4")
		require.NoError(t, err)
		assert.Contains(t, out, "0 label(s)")

		_, err = runCmd(t, server, "rm", linkID)
		require.NoError(t, err)

		_, err = runCmd(t, server, "show", linkID)
		assert.ErrorContains(t, err, "Link not found")
	})

	t.Run("labels", func(t *testing.T) {
		_, err := runCmd(t, server, "label-add", "Reading")
		require.NoError(t, err)

		out, err := runCmd(t, server, "labels")
		require.NoError(t, err)
		assert.Contains(t, out, "Reading")
		assert.Contains(t, out, "Favorites")
	})

	t.Run("me", func(t *testing.T) {
		out, err := runCmd(t, server, "me")
		require.NoError(t, err)
		assert.Equal(t, "anonymous\n", out)

		user, err := store.FindOrCreateUser(context.Background(), "github-5", "five@example.com")
		require.NoError(t, err)
		token, _, err := sessions.Create(context.Background(), user)
		require.NoError(t, err)

		out, err = runCmd(t, server, "me", "--session="+token)
		require.NoError(t, err)
		assert.Equal(t, "github-5 <five@example.com>\n", out)
	})

	t.Run("bad arguments", func(t *testing.T) {
		_, err := runCmd(t, server, "frobnicate")
		assert.Error(t, err)
	})
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--version"}, &out))
	assert.Equal(t, LinkCtlVersion+"\n", out.String())
}
