package service

import (
	"time"

	"engagement-scheduler/core/constants"
	"engagement-scheduler/modules/schedule/entity"
)

// BookingFilter decides whether a candidate instant collides with the
// current selection list, either exactly (booked) or within the buffer
// window around a booked slot.
type BookingFilter struct {
	// BufferEnabled gates the buffer check entirely
	BufferEnabled bool
	// BufferWindow around each booked slot - default 30 minutes
	BufferWindow time.Duration
}

// NewBookingFilter creates a filter with the default buffer window.
func NewBookingFilter(bufferEnabled bool) *BookingFilter {
	return &BookingFilter{
		BufferEnabled: bufferEnabled,
		BufferWindow:  constants.BufferWindowMinutes * time.Minute,
	}
}

// IsBooked reports whether some selected slot has the identical instant.
// Exact equality, not a tolerance.
func (f *BookingFilter) IsBooked(candidate time.Time, booked []entity.BookedSlot) bool {
	for _, slot := range booked {
		if slot.SameInstant(candidate) {
			return true
		}
	}
	return false
}

// IsInBuffer reports whether the candidate falls strictly inside the buffer
// window of some selected slot. The zero-distance case is excluded here;
// IsBooked covers it. Always false when buffer mode is disabled.
func (f *BookingFilter) IsInBuffer(candidate time.Time, booked []entity.BookedSlot) bool {
	if !f.BufferEnabled || len(booked) == 0 {
		return false
	}

	for _, slot := range booked {
		diff := candidate.Sub(slot.DateTimeUTC)
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 && diff <= f.BufferWindow {
			return true
		}
	}
	return false
}

// IsSelectable reports whether the candidate can still be chosen: neither
// booked nor inside a buffer window.
func (f *BookingFilter) IsSelectable(candidate time.Time, booked []entity.BookedSlot) bool {
	return !f.IsBooked(candidate, booked) && !f.IsInBuffer(candidate, booked)
}
