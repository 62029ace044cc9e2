package models

import (
	"time"
)

// Location identifies the place a weather report is for, as resolved by
// the provider. Region and Country may be empty for sparse responses.
type Location struct {
	Name      string
	Region    string
	Country   string
	Lat       float64
	Lon       float64
	Localtime string // provider-local "2006-01-02 15:04", used for hourly windowing
}

// CurrentConditions holds the current weather block. Fields the provider
// may omit entirely are pointers so the formatter can tell "absent" from
// a genuine zero.
type CurrentConditions struct {
	TempC         float64
	FeelsLikeC    float64
	Humidity      int // clamped to [0,100] at parse time
	ConditionText string
	ConditionCode int
	WindKph       float64
	WindDir       string
	GustKph       *float64
	PressureMb    float64
	LastUpdated   time.Time // provider timestamp, never the local clock
}

// Astronomy holds same-day sunrise and sunset as local clock times.
type Astronomy struct {
	Sunrise   ClockTime
	Sunset    ClockTime
	MoonPhase string
}

// HourlyEntry is one hour of the current day's forecast.
type HourlyEntry struct {
	Time          ClockTime
	TempC         float64
	ConditionText string
	ConditionCode int
}

// WeatherData is the full domain model for one provider response.
// Astro is nil when the provider returned no usable astronomy block;
// Hourly may be empty.
type WeatherData struct {
	Location Location
	Current  CurrentConditions
	Astro    *Astronomy
	Hourly   []HourlyEntry
}
