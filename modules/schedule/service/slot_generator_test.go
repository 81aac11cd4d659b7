package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectSlots(g *SlotGenerator, day time.Time, timezone string) []time.Time {
	var out []time.Time
	for slot := range g.SlotsForDay(day, timezone) {
		out = append(out, slot)
	}
	return out
}

func TestSlotsForDay_FullGrid(t *testing.T) {
	g := NewSlotGenerator()
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	slots := collectSlots(g, day, "ET")
	require.Len(t, slots, 48)

	loc := Location("ET")
	midnight := time.Date(2025, 8, 15, 0, 0, 0, 0, loc)
	assert.True(t, slots[0].Equal(midnight), "first slot is local midnight")
	assert.True(t, slots[47].Equal(midnight.Add(23*time.Hour+30*time.Minute)), "last slot is 23:30 local")

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30*time.Minute, slots[i].Sub(slots[i-1]), "slot %d spacing", i)
	}
}

func TestSlotsForDay_Restartable(t *testing.T) {
	g := NewSlotGenerator()
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	seq := g.SlotsForDay(day, "CT")

	first := make([]time.Time, 0, 48)
	for slot := range seq {
		first = append(first, slot)
	}
	second := make([]time.Time, 0, 48)
	for slot := range seq {
		second = append(second, slot)
	}

	require.Equal(t, first, second)
}

func TestSlotsForDay_EarlyBreak(t *testing.T) {
	g := NewSlotGenerator()
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	count := 0
	for range g.SlotsForDay(day, "ET") {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestSlotsForDay_ZeroDayYieldsNothing(t *testing.T) {
	g := NewSlotGenerator()
	assert.Empty(t, collectSlots(g, time.Time{}, "ET"))
}

func TestDayStart(t *testing.T) {
	g := NewSlotGenerator()
	day := time.Date(2025, 8, 15, 17, 42, 0, 0, time.UTC)

	start := g.DayStart(day, "MT")
	loc := Location("MT")
	assert.True(t, start.Equal(time.Date(2025, 8, 15, 0, 0, 0, 0, loc)))
}
