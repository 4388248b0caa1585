package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullablePayload struct {
	Photo NullableString `json:"photo_url"`
}

func TestNullableStringAbsent(t *testing.T) {
	var p nullablePayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Photo.Present)
}

func TestNullableStringExplicitNull(t *testing.T) {
	var p nullablePayload
	require.NoError(t, json.Unmarshal([]byte(`{"photo_url": null}`), &p))
	assert.True(t, p.Photo.Present)
	assert.False(t, p.Photo.Valid)
}

func TestNullableStringValue(t *testing.T) {
	var p nullablePayload
	require.NoError(t, json.Unmarshal([]byte(`{"photo_url": "https://cdn.example.com/x.webp"}`), &p))
	assert.True(t, p.Photo.Present)
	assert.True(t, p.Photo.Valid)
	assert.Equal(t, "https://cdn.example.com/x.webp", p.Photo.Value)
}

func TestNullableStringSetEmptyCountsAsClear(t *testing.T) {
	var n NullableString
	n.Set("")
	assert.True(t, n.Present)
	assert.False(t, n.Valid)
}

func TestNullableUUID(t *testing.T) {
	var n NullableUUID
	require.NoError(t, json.Unmarshal([]byte(`"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`), &n))
	assert.True(t, n.Present)
	assert.True(t, n.Valid)

	var null NullableUUID
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.True(t, null.Present)
	assert.False(t, null.Valid)
}
