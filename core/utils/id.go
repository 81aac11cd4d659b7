package utils

import (
	"engagement-scheduler/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateEngagementRef returns a human-readable engagement identifier of
// the form ENG-XXXXXXXX (8 base-36 uppercase characters). Generated once
// per workflow session and never re-derived from the store.
func GenerateEngagementRef() string {
	id, err := gonanoid.Generate(constants.EngagementRefAlphabet, constants.EngagementRefLength)
	if err != nil {
		return ""
	}
	return constants.EngagementRefPrefix + id
}
