package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"linkedlist-backend/internal/api/handlers"
	"linkedlist-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", path: "/health", wantStatus: http.StatusOK, wantBody: `"store":"healthy"`},
		{name: "unhealthy", path: "/health", pingErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `"store":"unreachable"`},
		{name: "ready", path: "/health/ready", wantStatus: http.StatusOK, wantBody: `"ready":true`},
		{name: "not ready", path: "/health/ready", pingErr: errors.New("down"), wantStatus: http.StatusServiceUnavailable, wantBody: `"ready":false`},
		{name: "live ignores the store", path: "/health/live", pingErr: errors.New("down"), wantStatus: http.StatusOK, wantBody: `"alive":true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewHealthHandler(stubPinger{err: tt.pingErr}, "test")
			httpSuite := testutils.SetupHTTPTest()
			httpSuite.Router.GET("/health", handler.Health)
			httpSuite.Router.GET("/health/ready", handler.Ready)
			httpSuite.Router.GET("/health/live", handler.Live)

			recorder := httpSuite.MakeRequest(http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
			assert.NotContains(t, recorder.Body.String(), "refused")
		})
	}
}
