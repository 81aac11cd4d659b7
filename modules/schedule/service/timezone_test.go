package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneID(t *testing.T) {
	cases := []struct {
		abbrev string
		want   string
	}{
		{"ET", "America/New_York"},
		{"CT", "America/Chicago"},
		{"MT", "America/Denver"},
		{"AT", "America/Halifax"},
		{"HT", "Pacific/Honolulu"},
		{"PT", "UTC"},
		{"", "UTC"},
		{"bogus", "UTC"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ZoneID(tc.abbrev), "abbrev %q", tc.abbrev)
	}
}

func TestLocation_UnknownFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location("XX"))
}

func TestConvertToZone_SameInstantDifferentClock(t *testing.T) {
	eastern, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2:00 PM Eastern on a summer date reads 1:00 PM Central
	original := time.Date(2025, 8, 15, 14, 0, 0, 0, eastern)
	converted := ConvertToZone(original, "CT")

	assert.True(t, converted.Equal(original))
	assert.Equal(t, 13, converted.Hour())
	assert.Equal(t, "America/Chicago", converted.Location().String())
}

func TestConvertToZone_UnknownZoneKeepsInstant(t *testing.T) {
	original := time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)
	converted := ConvertToZone(original, "nope")

	assert.True(t, converted.Equal(original))
	assert.Equal(t, time.UTC, converted.Location())
}
