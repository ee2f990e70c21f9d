// Package timezone holds the static timezone reference data offered to users.
package timezone

import (
	"fmt"
	"time"

	// Options must render on hosts without a system zoneinfo database.
	_ "time/tzdata"
)

// Zone is one reference entry.
type Zone struct {
	Label  string  `json:"label"`
	Offset float64 `json:"offset"`
	Name   string  `json:"name"`
}

// Option is a display pair for a select control.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Zones returns a copy of the reference list.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// Lookup returns the zone with the given IANA name.
func Lookup(name string) (Zone, bool) {
	for _, z := range zones {
		if z.Name == name {
			return z, true
		}
	}
	return Zone{}, false
}

// Options renders every zone as "(GMT±hh:mm) <label>" using the offset in
// effect at now, so daylight saving time is reflected.
func Options(now time.Time) ([]Option, error) {
	out := make([]Option, 0, len(zones))
	for _, z := range zones {
		label, err := Label(z, now)
		if err != nil {
			return nil, err
		}
		out = append(out, Option{Label: label, Value: z.Name})
	}
	return out, nil
}

// Label renders one zone's display label.
func Label(z Zone, now time.Time) (string, error) {
	loc, err := time.LoadLocation(z.Name)
	if err != nil {
		return "", fmt.Errorf("load location %s: %w", z.Name, err)
	}
	return fmt.Sprintf("(GMT%s) %s", now.In(loc).Format("-07:00"), z.Label), nil
}
