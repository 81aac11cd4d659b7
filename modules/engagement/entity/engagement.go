package entity

import (
	"time"

	scheduleEntity "engagement-scheduler/modules/schedule/entity"
)

// EngagementStatus represents the review state of an engagement record
type EngagementStatus string

const (
	StatusApproved EngagementStatus = "Approved"
)

// Engagement is the canonical record shape held by the external collection
// store. Primary/Secondary/Tertiary are snapshots copied from the selection
// list at synchronization time, never live references; later edits to the
// selection list do not change a previously synchronized record.
type Engagement struct {
	ID                 string                     `json:"id"`
	EngagementRef      string                     `json:"engagementRef,omitempty"`
	EngagementOwner    string                     `json:"engagementOwner"`
	Speaker            string                     `json:"speaker"`
	Caterer            string                     `json:"caterer,omitempty"`
	Cohost             string                     `json:"cohost,omitempty"`
	Primary            *scheduleEntity.BookedSlot `json:"primary,omitempty"`
	Secondary          *scheduleEntity.BookedSlot `json:"secondary,omitempty"`
	Tertiary           *scheduleEntity.BookedSlot `json:"tertiary,omitempty"`
	Status             EngagementStatus           `json:"status,omitempty"`
	TotalSlotsSelected int                        `json:"totalSlotsSelected,omitempty"`
	CreatedAt          *time.Time                 `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time                 `json:"updatedAt,omitempty"`
}
