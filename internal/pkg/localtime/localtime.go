// Package localtime converts stored UTC timestamps into the deployment's
// local time zone for display. The zone is configured once at startup
// (LIFELINK_TZ) and shared by all views.
package localtime

import (
	"fmt"
	"time"
)

// DefaultZone is used when no time zone is configured.
const DefaultZone = "America/Chicago"

// displayLayout matches the "YYYY-MM-DD HH:MM TZ" format shown on
// confirmation and portal views.
const displayLayout = "2006-01-02 15:04 MST"

// Converter formats UTC timestamps in a fixed local time zone.
type Converter struct {
	loc *time.Location
}

// NewConverter loads the named IANA time zone. An empty name falls back to
// DefaultZone. Returns an error if the zone is unknown.
func NewConverter(zone string) (*Converter, error) {
	if zone == "" {
		zone = DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", zone, err)
	}

	return &Converter{loc: loc}, nil
}

// String formats ts in the converter's zone. A nil timestamp produces an
// empty string so absent updated_at values render cleanly.
func (c *Converter) String(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.In(c.loc).Format(displayLayout)
}

// Time converts ts into the converter's zone.
func (c *Converter) Time(ts time.Time) time.Time {
	return ts.In(c.loc)
}
