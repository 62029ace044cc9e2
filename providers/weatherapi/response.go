package weatherapi

// Response mirrors the WeatherAPI.com forecast.json document. Blocks and
// numeric fields whose absence the parser must detect are pointers; the
// rest decode to their zero values and get defaulted downstream.
type Response struct {
	Location *LocationBlock `json:"location"`
	Current  *CurrentBlock  `json:"current"`
	Forecast *ForecastBlock `json:"forecast"`
}

// LocationBlock holds the resolved location.
type LocationBlock struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

// CurrentBlock holds current conditions.
type CurrentBlock struct {
	LastUpdatedEpoch int64          `json:"last_updated_epoch"`
	LastUpdated      string         `json:"last_updated"`
	TempC            *float64       `json:"temp_c"`
	FeelsLikeC       *float64       `json:"feelslike_c"`
	Condition        ConditionBlock `json:"condition"`
	WindKph          float64        `json:"wind_kph"`
	WindDir          string         `json:"wind_dir"`
	GustKph          *float64       `json:"gust_kph"`
	PressureMb       float64        `json:"pressure_mb"`
	Humidity         int            `json:"humidity"`
}

// ConditionBlock holds a condition description and provider code.
type ConditionBlock struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

// ForecastBlock holds the forecast days (one, since we request days=1).
type ForecastBlock struct {
	Forecastday []ForecastDay `json:"forecastday"`
}

// ForecastDay holds one day's astronomy and hourly slots.
type ForecastDay struct {
	Astro *AstroBlock `json:"astro"`
	Hour  []HourBlock `json:"hour"`
}

// AstroBlock holds sunrise/sunset as "06:30 AM" strings.
type AstroBlock struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	MoonPhase string `json:"moon_phase"`
}

// HourBlock holds one hourly forecast slot, timestamped "2006-01-02 15:04".
type HourBlock struct {
	Time      string         `json:"time"`
	TempC     *float64       `json:"temp_c"`
	Condition ConditionBlock `json:"condition"`
}
