package entity

import "time"

// EngagementDocument is one row of the stand-in collection store. The body
// is the raw JSON document; the store only owns the id and the timestamps.
type EngagementDocument struct {
	ID        string    `db:"id"`
	Body      []byte    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
