package models

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a local wall-clock time with no date attached, matching
// how the provider reports sunrise, sunset and hourly slots.
type ClockTime struct {
	Hour   int
	Minute int
}

// clockLayouts covers the time forms WeatherAPI.com uses: astronomy
// fields come back as "06:30 AM", hourly slots as 24-hour "18:00".
var clockLayouts = []string{
	"03:04 PM",
	"3:04 PM",
	"03:04PM",
	"3:04PM",
	"15:04",
}

// ParseClockTime parses a provider time string into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("unrecognized clock time %q", s)
}

// Minutes returns the time as minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the time as 24-hour "15:04".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
