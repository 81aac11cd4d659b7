package service

import (
	"time"

	"engagement-scheduler/core/logger"
)

// zoneIDs maps the supported timezone abbreviations to IANA identifiers.
var zoneIDs = map[string]string{
	"ET": "America/New_York",
	"CT": "America/Chicago",
	"MT": "America/Denver",
	"AT": "America/Halifax",
	"HT": "Pacific/Honolulu",
}

// ZoneID resolves a timezone abbreviation to its IANA identifier. Unknown
// input maps to UTC; the function never fails.
func ZoneID(abbrev string) string {
	if id, ok := zoneIDs[abbrev]; ok {
		return id
	}
	return "UTC"
}

// Location resolves a timezone abbreviation to a *time.Location, falling
// back to UTC when the zone database has no entry.
func Location(abbrev string) *time.Location {
	loc, err := time.LoadLocation(ZoneID(abbrev))
	if err != nil {
		logger.Warn("Timezone:Location:LoadFailed", "abbrev", abbrev, "zone", ZoneID(abbrev))
		return time.UTC
	}
	return loc
}

// ConvertToZone re-expresses an instant in the target zone's local calendar
// fields. The underlying instant is unchanged; only the clock-face reading
// moves. Used to re-anchor an in-progress candidate when the user switches
// the active timezone.
func ConvertToZone(t time.Time, abbrev string) time.Time {
	return t.In(Location(abbrev))
}
