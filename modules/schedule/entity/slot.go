package entity

import "time"

// SlotPriority ranks a selected slot. Priority is never independent truth;
// it is always derived from the slot's position in the selection list.
type SlotPriority string

const (
	PriorityPrimary   SlotPriority = "Primary"
	PrioritySecondary SlotPriority = "Secondary"
	PriorityTertiary  SlotPriority = "Tertiary"
	PriorityUnranked  SlotPriority = ""
)

// PriorityForIndex maps a zero-based list position to its priority label.
// Positions past the third are unranked and never persisted remotely.
func PriorityForIndex(index int) SlotPriority {
	switch index {
	case 0:
		return PriorityPrimary
	case 1:
		return PrioritySecondary
	case 2:
		return PriorityTertiary
	default:
		return PriorityUnranked
	}
}

// BookedSlot is one persisted selection. DateTimeUTC is the canonical
// identity for equality and buffer-distance checks; the display fields are a
// denormalized cache of the same instant, re-derivable from DateTimeUTC plus
// Timezone.
type BookedSlot struct {
	ID              int          `json:"id"`
	Priority        SlotPriority `json:"priority,omitempty"`
	DateTimeUTC     time.Time    `json:"dateTimeUTC"`
	SelectedDate    time.Time    `json:"selectedDate"`
	SelectedTime    time.Time    `json:"selectedTime"`
	Timezone        string       `json:"timezone"`
	CreatedAt       time.Time    `json:"createdAt"`
	DisplayDate     string       `json:"displayDate"`
	DisplayTime     string       `json:"displayTime"`
	DisplayTimeZone string       `json:"displayTimeZone"`
}

// SameInstant reports whether the slot and the candidate are the exact same
// point in time, regardless of the zone either is expressed in.
func (s BookedSlot) SameInstant(candidate time.Time) bool {
	return s.DateTimeUTC.Equal(candidate)
}
