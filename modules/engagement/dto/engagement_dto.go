package dto

// CreateEngagementRequest carries the owner metadata for a new engagement
// record. EngagementOwner and Speaker are required.
type CreateEngagementRequest struct {
	EngagementOwner string `json:"engagementOwner"`
	Speaker         string `json:"speaker"`
	Caterer         string `json:"caterer"`
	Cohost          string `json:"cohost"`
}
