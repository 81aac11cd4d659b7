package service

import (
	"iter"
	"time"

	"engagement-scheduler/core/constants"
)

// SlotGenerator produces the candidate time slots for a calendar day.
type SlotGenerator struct {
	// SlotIntervalMinutes between consecutive candidates - default 30
	SlotIntervalMinutes int
	// SlotsPerDay emitted per calendar day - default 48
	SlotsPerDay int
}

// NewSlotGenerator creates a generator with the default half-hour grid.
func NewSlotGenerator() *SlotGenerator {
	return &SlotGenerator{
		SlotIntervalMinutes: constants.SlotIntervalMinutes,
		SlotsPerDay:         constants.SlotsPerDay,
	}
}

// SlotsForDay returns the sequence of candidate instants for the given
// calendar day in the given zone: local midnight, then every interval up to
// the last slot of the day. The sequence is finite, restartable, and
// recomputed on every iteration; a zero day yields nothing.
func (g *SlotGenerator) SlotsForDay(day time.Time, timezone string) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if day.IsZero() {
			return
		}

		loc := Location(timezone)
		midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		interval := time.Duration(g.SlotIntervalMinutes) * time.Minute

		for i := 0; i < g.SlotsPerDay; i++ {
			if !yield(midnight.Add(time.Duration(i) * interval)) {
				return
			}
		}
	}
}

// DayStart returns local midnight of the given day in the given zone.
func (g *SlotGenerator) DayStart(day time.Time, timezone string) time.Time {
	loc := Location(timezone)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
}
