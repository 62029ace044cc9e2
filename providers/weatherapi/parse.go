package weatherapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"waybar-weather/models"
)

// hourlyWindow is how many forecast hours beyond the current one the
// tooltip shows, capped at the end of the day.
const hourlyWindow = 11

// MissingFieldError reports a required field the provider response did
// not supply. It is fatal to the success path; everything optional is
// clamped or dropped instead.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("provider response is missing required field %q", e.Field)
}

// Parse converts a decoded provider response into the domain model.
// Required fields are the location name, current temperature and current
// condition text; their absence fails the parse. Optional blocks degrade
// field by field: out-of-range numbers are clamped, unusable astronomy
// or hourly entries are dropped.
func Parse(raw *Response) (models.WeatherData, error) {
	if raw.Location == nil || strings.TrimSpace(raw.Location.Name) == "" {
		return models.WeatherData{}, &MissingFieldError{Field: "location.name"}
	}
	if raw.Current == nil {
		return models.WeatherData{}, &MissingFieldError{Field: "current"}
	}
	if raw.Current.TempC == nil {
		return models.WeatherData{}, &MissingFieldError{Field: "current.temp_c"}
	}
	if strings.TrimSpace(raw.Current.Condition.Text) == "" {
		return models.WeatherData{}, &MissingFieldError{Field: "current.condition.text"}
	}

	data := models.WeatherData{
		Location: models.Location{
			Name:      raw.Location.Name,
			Region:    raw.Location.Region,
			Country:   raw.Location.Country,
			Lat:       raw.Location.Lat,
			Lon:       raw.Location.Lon,
			Localtime: raw.Location.Localtime,
		},
		Current: parseCurrent(raw.Current),
	}

	if raw.Forecast != nil && len(raw.Forecast.Forecastday) > 0 {
		day := raw.Forecast.Forecastday[0]
		data.Astro = parseAstro(day.Astro)
		data.Hourly = parseHours(day.Hour, localHour(raw.Location.Localtime))
	}

	return data, nil
}

func parseCurrent(cur *CurrentBlock) models.CurrentConditions {
	out := models.CurrentConditions{
		TempC:         *cur.TempC,
		FeelsLikeC:    *cur.TempC,
		Humidity:      clampHumidity(cur.Humidity),
		ConditionText: cur.Condition.Text,
		ConditionCode: cur.Condition.Code,
		WindKph:       cur.WindKph,
		WindDir:       cur.WindDir,
		PressureMb:    cur.PressureMb,
		LastUpdated:   parseLastUpdated(cur.LastUpdatedEpoch, cur.LastUpdated),
	}
	if cur.FeelsLikeC != nil {
		out.FeelsLikeC = *cur.FeelsLikeC
	}
	if out.WindKph < 0 {
		out.WindKph = 0
	}
	if out.PressureMb < 0 {
		out.PressureMb = 0
	}
	// Gusts only matter when they exceed the sustained wind.
	if cur.GustKph != nil && *cur.GustKph > out.WindKph {
		gust := *cur.GustKph
		out.GustKph = &gust
	}
	return out
}

func parseAstro(astro *AstroBlock) *models.Astronomy {
	if astro == nil {
		return nil
	}
	sunrise, err := models.ParseClockTime(astro.Sunrise)
	if err != nil {
		return nil
	}
	sunset, err := models.ParseClockTime(astro.Sunset)
	if err != nil {
		return nil
	}
	return &models.Astronomy{
		Sunrise:   sunrise,
		Sunset:    sunset,
		MoonPhase: astro.MoonPhase,
	}
}

// parseHours converts the day's hourly slots, keeping the window from
// the location's current hour through the next hourlyWindow hours (never
// past 23:00), sorted ascending. Entries missing a temperature or with
// an unparseable timestamp are skipped, not fatal.
func parseHours(hours []HourBlock, currentHour int) []models.HourlyEntry {
	maxHour := currentHour + hourlyWindow
	if maxHour > 23 {
		maxHour = 23
	}

	var entries []models.HourlyEntry
	for _, h := range hours {
		if h.TempC == nil {
			continue
		}
		ct, err := parseHourTime(h.Time)
		if err != nil {
			continue
		}
		if ct.Hour < currentHour || ct.Hour > maxHour {
			continue
		}
		entries = append(entries, models.HourlyEntry{
			Time:          ct,
			TempC:         *h.TempC,
			ConditionText: h.Condition.Text,
			ConditionCode: h.Condition.Code,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time.Minutes() < entries[j].Time.Minutes()
	})
	return entries
}

// parseHourTime extracts the clock time from an hourly slot timestamp
// like "2023-01-13 14:00".
func parseHourTime(s string) (models.ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(s), " ", 2)
	if len(parts) != 2 {
		return models.ClockTime{}, fmt.Errorf("invalid hourly timestamp %q", s)
	}
	return models.ParseClockTime(parts[1])
}

// localHour returns the hour of the location's local time, zero when the
// localtime string is absent or malformed.
func localHour(localtime string) int {
	parts := strings.SplitN(localtime, " ", 2)
	if len(parts) != 2 {
		return 0
	}
	hourStr, _, found := strings.Cut(parts[1], ":")
	if !found {
		return 0
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

// parseLastUpdated prefers the epoch field and falls back to the
// formatted string. Both failing yields the zero time and the formatter
// drops the updated line.
func parseLastUpdated(epoch int64, formatted string) time.Time {
	if epoch > 0 {
		return time.Unix(epoch, 0).UTC()
	}
	if t, err := time.Parse("2006-01-02 15:04", formatted); err == nil {
		return t
	}
	return time.Time{}
}

func clampHumidity(h int) int {
	if h < 0 {
		return 0
	}
	if h > 100 {
		return 100
	}
	return h
}
