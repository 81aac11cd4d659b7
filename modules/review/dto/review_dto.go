package dto

// DeclineRequest carries the explicit confirmation for declining an
// engagement. Decline deletes the record; there is no undo.
type DeclineRequest struct {
	Confirm bool `json:"confirm"`
}
