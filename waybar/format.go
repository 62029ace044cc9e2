// Package waybar renders the two-field JSON envelope the bar consumes.
// The success and error paths are independent; the error path takes no
// fallible input so a valid envelope always exists.
package waybar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"waybar-weather/icons"
	"waybar-weather/meteo"
	"waybar-weather/models"
)

// serviceName is shown in the error tooltip so the user knows which
// provider failed.
const serviceName = "WeatherAPI.com"

// now is stubbed in tests; the error path is the only place the local
// clock appears, since no provider timestamp exists there.
var now = time.Now

var titleCaser = cases.Title(language.English)

// Wind speed colors by category, sustained or gust, pango markup for the
// tooltip. Calm winds stay white; the scale runs through moderate
// breezes, gales and storms to hurricane force.
func windColor(kph float64) string {
	switch {
	case kph < 20:
		return "#FFFFFF"
	case kph <= 50:
		return "#00AA00"
	case kph <= 88:
		return "#FFA500"
	case kph <= 117:
		return "#FF0000"
	default:
		return "#9B30FF"
	}
}

// coloredSpeed wraps just the number in a pango color span.
func coloredSpeed(kph float64) string {
	return fmt.Sprintf("<span foreground=%q>%.0f</span>", windColor(kph), kph)
}

// Format builds the success envelope from a parsed report. Every
// optional datum suppresses only its own tooltip line.
func Format(data models.WeatherData) models.WaybarOutput {
	derived := meteo.Compute(data)
	icon := icons.ForCondition(data.Current.ConditionCode, data.Current.ConditionText)

	text := fmt.Sprintf("%s %.0f°C %s", icon, data.Current.TempC, data.Location.Name)

	lines := []string{
		"📍 Location: " + locationLine(data.Location),
		fmt.Sprintf("🌡️ Temperature: %.0f°C (feels like %.0f°C)", data.Current.TempC, data.Current.FeelsLikeC),
		"🌤️ Condition: " + data.Current.ConditionText,
		fmt.Sprintf("💧 Humidity: %d%% (dew point %.0f°C)", data.Current.Humidity, derived.DewPointC),
	}

	if data.Current.WindKph > 0 {
		lines = append(lines, windLine(data.Current.WindKph, data.Current.GustKph, data.Current.WindDir))
	}
	if data.Current.PressureMb > 0 {
		lines = append(lines, fmt.Sprintf("📊 Pressure: %.0f hPa", data.Current.PressureMb))
	}

	if data.Astro != nil {
		lines = append(lines,
			"🌅 Sunrise: "+data.Astro.Sunrise.String(),
			"🌇 Sunset: "+data.Astro.Sunset.String(),
		)
	}
	if derived.HasSolarNoon {
		lines = append(lines, "🌞 Solar noon: "+derived.SolarNoon.String())
	}
	if derived.HasDayLength {
		lines = append(lines, "⏳ Day length: "+formatDayLength(derived.DayLength))
	}

	if len(data.Hourly) > 0 {
		lines = append(lines, "", "⏰ Upcoming hours:")
		for _, hour := range data.Hourly {
			lines = append(lines, hourlyLine(hour))
		}
	}

	if !data.Current.LastUpdated.IsZero() {
		lines = append(lines, "", "🕐 Updated: "+data.Current.LastUpdated.Format("2006-01-02 15:04"))
	}

	return models.WaybarOutput{
		Text:    text,
		Tooltip: strings.Join(lines, "\n"),
	}
}

// ErrorOutput builds the failure envelope. It cannot fail: both inputs
// are plain strings and an empty location gets a placeholder.
func ErrorOutput(location, detail string) models.WaybarOutput {
	if strings.TrimSpace(location) == "" {
		location = "Unknown"
	}
	tooltip := fmt.Sprintf(
		"Unable to fetch weather data for %s\n\nError: %s\nService: %s\n\nLast attempt: %s",
		location,
		detail,
		serviceName,
		now().Format("2006-01-02 15:04"),
	)
	return models.WaybarOutput{
		Text:    icons.Unknown + " -- Weather unavailable",
		Tooltip: tooltip,
	}
}

// Render encodes the envelope as JSON; tooltip newlines come out as \n.
func Render(out models.WaybarOutput) ([]byte, error) {
	return json.Marshal(out)
}

func locationLine(loc models.Location) string {
	parts := []string{loc.Name}
	if loc.Region != "" && loc.Region != loc.Name {
		parts = append(parts, loc.Region)
	}
	if loc.Country != "" {
		parts = append(parts, loc.Country)
	}
	return strings.Join(parts, ", ")
}

func windLine(kph float64, gust *float64, dir string) string {
	var b strings.Builder
	b.WriteString("💨 Wind: ")
	b.WriteString(coloredSpeed(kph))
	b.WriteString(" km/h")
	if gust != nil {
		fmt.Fprintf(&b, " (gusts %s km/h)", coloredSpeed(*gust))
	}
	if dir != "" {
		b.WriteString(" " + dir)
	}
	return b.String()
}

func hourlyLine(hour models.HourlyEntry) string {
	return fmt.Sprintf("• %s - %.0f°C %s", hour.Time, hour.TempC, titleCaser.String(hour.ConditionText))
}

func formatDayLength(d time.Duration) string {
	total := int(d.Minutes())
	return fmt.Sprintf("%dh%02dm", total/60, total%60)
}
