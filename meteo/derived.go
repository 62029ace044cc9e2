// Package meteo computes the secondary quantities the provider does not
// report directly: dew point, solar noon and day length. All functions
// are pure and never consult the wall clock.
package meteo

import (
	"math"
	"time"

	"waybar-weather/models"
)

// Magnus coefficients for dew point over water (Sonntag 1990).
const (
	magnusA = 17.62
	magnusB = 243.12
)

// Derived holds the computed quantities for one report. SolarNoon and
// DayLength carry ok flags because anomalous astronomy data (sunset
// before sunrise) makes them meaningless rather than zero.
type Derived struct {
	DewPointC    float64
	SolarNoon    models.ClockTime
	HasSolarNoon bool
	DayLength    time.Duration
	HasDayLength bool
}

// DewPoint returns the dew point in °C for the given temperature and
// relative humidity using the Magnus formula. Humidity is clamped to
// [1,100]; zero is treated as 1 to keep the logarithm finite.
func DewPoint(tempC float64, humidityPct int) float64 {
	if humidityPct < 1 {
		humidityPct = 1
	}
	if humidityPct > 100 {
		humidityPct = 100
	}
	gamma := math.Log(float64(humidityPct)/100) + magnusA*tempC/(magnusB+tempC)
	return magnusB * gamma / (magnusA - gamma)
}

// SolarNoon returns the midpoint between sunrise and sunset. When sunset
// numerically precedes sunrise the data is anomalous and ok is false;
// wrap-around across midnight is not a case same-day data can produce.
func SolarNoon(sunrise, sunset models.ClockTime) (models.ClockTime, bool) {
	if sunset.Minutes() < sunrise.Minutes() {
		return models.ClockTime{}, false
	}
	mid := (sunrise.Minutes() + sunset.Minutes()) / 2
	return models.ClockTime{Hour: mid / 60, Minute: mid % 60}, true
}

// DayLength returns sunset minus sunrise. Negative spans are clamped to
// zero and flagged not-ok so callers omit them instead of displaying a
// nonsensical value.
func DayLength(sunrise, sunset models.ClockTime) (time.Duration, bool) {
	span := sunset.Minutes() - sunrise.Minutes()
	if span < 0 {
		return 0, false
	}
	return time.Duration(span) * time.Minute, true
}

// Compute assembles every derived quantity for a report. Astronomy-based
// values are left not-ok when the report has no astronomy block.
func Compute(data models.WeatherData) Derived {
	d := Derived{
		DewPointC: DewPoint(data.Current.TempC, data.Current.Humidity),
	}
	if data.Astro == nil {
		return d
	}
	d.SolarNoon, d.HasSolarNoon = SolarNoon(data.Astro.Sunrise, data.Astro.Sunset)
	d.DayLength, d.HasDayLength = DayLength(data.Astro.Sunrise, data.Astro.Sunset)
	return d
}
