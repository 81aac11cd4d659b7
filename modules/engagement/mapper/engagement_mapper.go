package mapper

import (
	"encoding/json"
	"fmt"
	"maps"

	"engagement-scheduler/modules/engagement/entity"
)

// NormalizeEngagement maps one raw store document onto the canonical
// Engagement record. This is the single normalization step at the store
// boundary: legacy key aliases are resolved here, and unrecognized shapes
// fail explicitly instead of silently defaulting.
func NormalizeEngagement(raw map[string]any) (*entity.Engagement, error) {
	if raw == nil {
		return nil, fmt.Errorf("document is empty")
	}

	id, err := documentID(raw)
	if err != nil {
		return nil, err
	}

	doc := maps.Clone(raw)
	delete(doc, "id")

	// Legacy documents carried the owner under "owner"
	if _, ok := doc["engagementOwner"]; !ok {
		if owner, ok := doc["owner"]; ok {
			doc["engagementOwner"] = owner
		}
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	var rec entity.Engagement
	if err := json.Unmarshal(encoded, &rec); err != nil {
		return nil, fmt.Errorf("unrecognized document shape: %w", err)
	}
	rec.ID = id

	return &rec, nil
}

// documentID accepts string and numeric ids; the store treats the id as
// opaque but not every backend types it consistently.
func documentID(raw map[string]any) (string, error) {
	val, ok := raw["id"]
	if !ok {
		return "", fmt.Errorf("document has no id")
	}

	switch id := val.(type) {
	case string:
		if id == "" {
			return "", fmt.Errorf("document has an empty id")
		}
		return id, nil
	case float64:
		return fmt.Sprintf("%.0f", id), nil
	case json.Number:
		return id.String(), nil
	default:
		return "", fmt.Errorf("document id has unsupported type %T", val)
	}
}
