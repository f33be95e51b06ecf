package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	ds, err := Demo()
	require.NoError(t, err)

	require.Len(t, ds.Users, 1)
	assert.Equal(t, "user-1", ds.Users[0].ID)
	assert.Equal(t, "demo@example.com", ds.Users[0].Email)
	assert.Len(t, ds.Links, 3)
	assert.Len(t, ds.Notes, 4)
	assert.Len(t, ds.Labels, 4)
	assert.Len(t, ds.LinkLabels, 6)

	require.NotNil(t, ds.Links[0].Description)
	assert.Equal(t, "https://svelte.dev", ds.Links[0].URL)
	assert.Equal(t, 2025, ds.Links[0].CreatedAt.Year())
	assert.Equal(t, 10, ds.Notes[0].CreatedAt.Hour())
}

func TestParse_DanglingReference(t *testing.T) {
	data := []byte(`
users:
  - id: user-1
    email: a@b.test
notes:
  - id: note-1
    linkId: missing
    content: orphan
`)
	_, err := Parse(data)
	assert.ErrorContains(t, err, "unknown link")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("users: ["))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
}
