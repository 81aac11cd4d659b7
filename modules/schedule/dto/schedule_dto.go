package dto

import (
	"time"

	"engagement-scheduler/modules/schedule/entity"
)

// SlotCandidate is one generator output annotated with its availability
// against the current selection list.
type SlotCandidate struct {
	DateTime    time.Time `json:"dateTime"`
	DateTimeUTC time.Time `json:"dateTimeUTC"`
	Display     string    `json:"display"`
	Booked      bool      `json:"booked"`
	InBuffer    bool      `json:"inBuffer"`
	Selectable  bool      `json:"selectable"`
}

// DaySlotsResponse carries the 48 candidates for one calendar day.
type DaySlotsResponse struct {
	Date     string          `json:"date"`
	Timezone string          `json:"timezone"`
	Buffer   bool            `json:"buffer"`
	Slots    []SlotCandidate `json:"slots"`
}

// AddSlotRequest books one candidate instant into the selection list.
type AddSlotRequest struct {
	// DateTime is the zoned candidate instant, RFC3339
	DateTime time.Time `json:"dateTime"`
	Timezone string    `json:"timezone"`
	// BufferEnabled mirrors the caller's buffer toggle so the add path can
	// re-apply the same exclusion the slot grid showed
	BufferEnabled bool `json:"bufferEnabled"`
}

// SelectionListResponse is the current selection list with derived
// priorities. Stored distinguishes "cleared / never selected" (key absent)
// from a non-empty persisted list.
type SelectionListResponse struct {
	Slots  []entity.BookedSlot `json:"slots"`
	Count  int                 `json:"count"`
	Stored bool                `json:"stored"`
}

// TimezoneChangeRequest re-projects an in-progress candidate into a new
// active timezone.
type TimezoneChangeRequest struct {
	DateTime time.Time `json:"dateTime"`
	Timezone string    `json:"timezone"`
}

// TimezoneChangeResponse is the same instant re-expressed in the new zone.
type TimezoneChangeResponse struct {
	DateTime    time.Time `json:"dateTime"`
	DateTimeUTC time.Time `json:"dateTimeUTC"`
	Timezone    string    `json:"timezone"`
	DisplayDate string    `json:"displayDate"`
	DisplayTime string    `json:"displayTime"`
}
