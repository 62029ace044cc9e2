// Package icons maps provider weather conditions to the fixed emoji set
// used in the bar.
package icons

import (
	"strings"
)

// Icons in the fixed set.
const (
	Sun          = "☀️"
	PartlyCloudy = "⛅"
	Cloud        = "☁️"
	Rain         = "🌧️"
	Storm        = "⛈️"
	Snow         = "🌨️"
	Fog          = "🌫️"
	Wind         = "💨"
	Unknown      = "🌤️" // also the "weather unavailable" icon
)

// codeIcons maps WeatherAPI.com condition codes directly to icons. Codes
// not listed here fall back to text matching.
var codeIcons = map[int]string{
	1000: Sun,          // Sunny / Clear
	1003: PartlyCloudy, // Partly cloudy
	1006: Cloud,        // Cloudy
	1009: Cloud,        // Overcast
	1030: Fog,          // Mist
	1135: Fog,          // Fog
	1147: Fog,          // Freezing fog
	1063: Rain,         // Patchy rain possible
	1150: Rain,         // Patchy light drizzle
	1153: Rain,         // Light drizzle
	1180: Rain,         // Patchy light rain
	1183: Rain,         // Light rain
	1186: Rain,         // Moderate rain at times
	1189: Rain,         // Moderate rain
	1192: Rain,         // Heavy rain at times
	1195: Rain,         // Heavy rain
	1240: Rain,         // Light rain shower
	1243: Rain,         // Moderate or heavy rain shower
	1246: Rain,         // Torrential rain shower
	1066: Snow,         // Patchy snow possible
	1069: Snow,         // Patchy sleet possible
	1072: Snow,         // Patchy freezing drizzle possible
	1114: Snow,         // Blowing snow
	1117: Snow,         // Blizzard
	1168: Snow,         // Freezing drizzle
	1171: Snow,         // Heavy freezing drizzle
	1198: Snow,         // Light freezing rain
	1201: Snow,         // Moderate or heavy freezing rain
	1204: Snow,         // Light sleet
	1207: Snow,         // Moderate or heavy sleet
	1210: Snow,         // Patchy light snow
	1213: Snow,         // Light snow
	1216: Snow,         // Patchy moderate snow
	1219: Snow,         // Moderate snow
	1222: Snow,         // Patchy heavy snow
	1225: Snow,         // Heavy snow
	1237: Snow,         // Ice pellets
	1249: Snow,         // Light sleet showers
	1252: Snow,         // Moderate or heavy sleet showers
	1255: Snow,         // Light snow showers
	1258: Snow,         // Moderate or heavy snow showers
	1261: Snow,         // Light showers of ice pellets
	1264: Snow,         // Moderate or heavy showers of ice pellets
	1087: Storm,        // Thundery outbreaks possible
	1273: Storm,        // Patchy light rain with thunder
	1276: Storm,        // Moderate or heavy rain with thunder
	1279: Storm,        // Patchy light snow with thunder
	1282: Storm,        // Moderate or heavy snow with thunder
}

// table is the substring fallback, matched first-hit-wins against the
// lowercased condition text. The order is a contract: storm outranks
// rain so "Thundery rain" resolves to the storm icon, fog outranks snow
// so "Freezing fog" stays fog, snow outranks rain for freezing
// precipitation, and "partly" is tested before the plain cloud patterns.
var table = []struct {
	patterns []string
	icon     string
}{
	{[]string{"thunder", "storm"}, Storm},
	{[]string{"fog", "mist"}, Fog},
	{[]string{"snow", "blizzard", "sleet", "freezing", "ice"}, Snow},
	{[]string{"rain", "drizzle", "shower"}, Rain},
	{[]string{"partly", "partial"}, PartlyCloudy},
	{[]string{"cloud", "overcast"}, Cloud},
	{[]string{"clear", "sunny"}, Sun},
	{[]string{"wind"}, Wind},
}

// ForCondition picks one icon for a condition. The provider code wins
// when recognized; otherwise the text table decides; anything unmatched
// gets the default icon.
func ForCondition(code int, text string) string {
	if icon, ok := codeIcons[code]; ok {
		return icon
	}
	lower := strings.ToLower(text)
	for _, row := range table {
		for _, p := range row.patterns {
			if strings.Contains(lower, p) {
				return row.icon
			}
		}
	}
	return Unknown
}
