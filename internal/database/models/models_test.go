package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestOptionalString_Unmarshal(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var p LinkPatch
		require.NoError(t, json.Unmarshal([]byte(`{"title":"New"}`), &p))
		assert.False(t, p.Description.Set)
		assert.Equal(t, "New", *p.Title)
	})

	t.Run("explicit null", func(t *testing.T) {
		var p LinkPatch
		require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))
		assert.True(t, p.Description.Set)
		assert.Nil(t, p.Description.Value)
	})

	t.Run("value", func(t *testing.T) {
		var p LinkPatch
		require.NoError(t, json.Unmarshal([]byte(`{"description":"docs"}`), &p))
		assert.True(t, p.Description.Set)
		assert.Equal(t, "docs", *p.Description.Value)
	})

	t.Run("wrong type", func(t *testing.T) {
		var p LinkPatch
		assert.Error(t, json.Unmarshal([]byte(`{"description":12}`), &p))
	})
}

func TestOptionalString_Marshal(t *testing.T) {
	data, err := json.Marshal(LinkPatch{Title: strPtr("T")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T"}`, string(data))

	data, err = json.Marshal(LinkPatch{Description: Null()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":null}`, string(data))

	data, err = json.Marshal(LinkPatch{Description: SetString("d")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"d"}`, string(data))
}

func TestLinkPatch_Apply(t *testing.T) {
	link := Link{URL: "https://a.test", Title: "A", Description: strPtr("old")}

	LinkPatch{Title: strPtr("B")}.Apply(&link)
	assert.Equal(t, "B", link.Title)
	assert.Equal(t, "https://a.test", link.URL)
	assert.Equal(t, "old", *link.Description)

	permanent := true
	LinkPatch{IsPermanent: &permanent, Description: Null()}.Apply(&link)
	assert.True(t, link.IsPermanent)
	assert.Nil(t, link.Description)
}

func TestNotePatch_Apply(t *testing.T) {
	note := Note{Content: "first"}
	published := true
	NotePatch{IsPublished: &published}.Apply(&note)
	assert.Equal(t, "first", note.Content)
	assert.True(t, note.IsPublished)
}

func TestLink_Clone(t *testing.T) {
	link := Link{ID: "link-1", Description: strPtr("shared")}
	clone := link.Clone()
	*clone.Description = "changed"
	assert.Equal(t, "shared", *link.Description)
}

func TestLink_JSONShape(t *testing.T) {
	data, err := json.Marshal(Link{ID: "link-1", UserID: "user-1", URL: "https://a.test", Title: "A"})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "description")
	assert.Nil(t, raw["description"])
	assert.Equal(t, "user-1", raw["userId"])
	assert.Equal(t, false, raw["isPermanent"])
}

func TestNextUpdatedAt(t *testing.T) {
	prev := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, prev.Add(time.Second), NextUpdatedAt(prev, prev.Add(time.Second)))
	assert.Equal(t, prev.Add(time.Microsecond), NextUpdatedAt(prev, prev))
	assert.Equal(t, prev.Add(time.Microsecond), NextUpdatedAt(prev, prev.Add(-time.Hour)))
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Minute)}).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now}).Expired(now))
}
