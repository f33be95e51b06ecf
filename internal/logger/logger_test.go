package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	Setup("debug")
	logrus.SetOutput(buf)
	t.Cleanup(func() { Setup("info") })
	return buf
}

func TestWithContext(t *testing.T) {
	buf := captureOutput(t)

	ctx := context.WithValue(context.Background(), "user_id", "user-1")
	ctx = context.WithValue(ctx, "request_id", "req-42")
	WithContext(ctx).WithField("link_id", "link-1").Info("link fetched")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user-1", entry["user"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "link-1", entry["link_id"])
	assert.Equal(t, "link fetched", entry["msg"])
}

func TestWithContext_Anonymous(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).WithError(errors.New("boom")).Error("failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "anonymous", entry["user"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "error", entry["level"])
}

func TestSetup_Levels(t *testing.T) {
	t.Cleanup(func() { Setup("info") })

	Setup("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	Setup("DEBUG")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("nonsense")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
