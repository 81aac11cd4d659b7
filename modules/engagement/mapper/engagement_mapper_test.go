package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEngagement(t *testing.T) {
	rec, err := NormalizeEngagement(map[string]any{
		"id":              "42",
		"engagementOwner": "Dana Whitfield",
		"speaker":         "Dr. Okafor",
		"status":          "Approved",
	})
	require.NoError(t, err)

	assert.Equal(t, "42", rec.ID)
	assert.Equal(t, "Dana Whitfield", rec.EngagementOwner)
	assert.Equal(t, "Dr. Okafor", rec.Speaker)
	assert.Equal(t, "Approved", string(rec.Status))
}

func TestNormalizeEngagement_LegacyOwnerKey(t *testing.T) {
	rec, err := NormalizeEngagement(map[string]any{
		"id":    "7",
		"owner": "Marcus Lee",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marcus Lee", rec.EngagementOwner)
}

func TestNormalizeEngagement_CanonicalKeyWinsOverLegacy(t *testing.T) {
	rec, err := NormalizeEngagement(map[string]any{
		"id":              "7",
		"engagementOwner": "Dana",
		"owner":           "Marcus",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana", rec.EngagementOwner)
}

func TestNormalizeEngagement_NumericID(t *testing.T) {
	rec, err := NormalizeEngagement(map[string]any{
		"id":              float64(42),
		"engagementOwner": "Dana",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", rec.ID)

	rec, err = NormalizeEngagement(map[string]any{
		"id":              json.Number("17"),
		"engagementOwner": "Dana",
	})
	require.NoError(t, err)
	assert.Equal(t, "17", rec.ID)
}

func TestNormalizeEngagement_Rejections(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
	}{
		{"nil document", nil},
		{"missing id", map[string]any{"engagementOwner": "Dana"}},
		{"empty id", map[string]any{"id": ""}},
		{"unsupported id type", map[string]any{"id": true}},
		{"mistyped field", map[string]any{"id": "1", "engagementOwner": 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeEngagement(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeEngagement_DoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"id": "1", "owner": "Dana"}
	_, err := NormalizeEngagement(raw)
	require.NoError(t, err)

	assert.Equal(t, "1", raw["id"])
	_, hasAlias := raw["engagementOwner"]
	assert.False(t, hasAlias)
}
