package constants

import "time"

// Request timeouts
const (
	DefaultTimeout        = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Cache keys
const (
	CacheKeySelectedSlots = "schedule:booked_slots"
)

// Slot engine settings
const (
	SlotIntervalMinutes = 30
	SlotsPerDay         = 48
	BufferWindowMinutes = 30
	MaxPersistedSlots   = 3
)

// Engagement reference format: ENG- followed by 8 base-36 uppercase chars
const (
	EngagementRefPrefix   = "ENG-"
	EngagementRefLength   = 8
	EngagementRefAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)
