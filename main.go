package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"waybar-weather/config"
	"waybar-weather/datasource"
	"waybar-weather/logging"
	"waybar-weather/models"
	"waybar-weather/providers/weatherapi"
	"waybar-weather/waybar"
)

// fallbackEnvelope is emitted if even JSON encoding fails; the bar must
// always receive a well-formed two-field object.
const fallbackEnvelope = `{"text":"🌤️ -- Weather unavailable","tooltip":"internal error"}`

func main() {
	// A .env file is optional; absence is the normal case.
	_ = godotenv.Load()

	cfg, cfgErr := config.Load()

	timeout := flag.Duration("timeout", 0, "override the provider request timeout")
	flag.Parse()
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	if cfgErr != nil {
		logger.Warn("configuration problem, using defaults", "error", cfgErr)
	}

	location := flag.Arg(0)
	if location == "" {
		location = cfg.Location
	}

	out := run(cfg, location, logger)

	payload, err := waybar.Render(out)
	if err != nil {
		logger.Error("failed to encode envelope", "error", err)
		fmt.Println(fallbackEnvelope)
		return
	}
	fmt.Println(string(payload))
}

// run executes one fetch-and-format pass. Every failure collapses into
// the error envelope; run itself never fails.
func run(cfg config.Config, location string, logger *slog.Logger) models.WaybarOutput {
	if cfg.APIKey == "" {
		logger.Error("WEATHER_API_KEY is not set")
		return waybar.ErrorOutput(location, "WEATHER_API_KEY environment variable not set")
	}

	// WeatherAPI's free tier allows roughly 23 calls/minute; keep the
	// same client-side ceiling the service would enforce.
	var source datasource.Source = weatherapi.NewSource(cfg.APIKey, cfg.BaseURL, cfg.Timeout)
	source = datasource.NewRateLimitedSource(source, 0.4, 3)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+time.Second)
	defer cancel()

	logger.Debug("fetching weather", "location", location, "provider", source.Name(), "timeout", cfg.Timeout)

	data, err := source.FetchWeatherData(ctx, location)
	if err != nil {
		logger.Error("fetch failed", "location", location, "error", err)
		return waybar.ErrorOutput(location, err.Error())
	}

	logger.Debug("fetched weather",
		"location", data.Location.Name,
		"condition", data.Current.ConditionText,
		"temp_c", data.Current.TempC,
		"hourly_entries", len(data.Hourly),
	)

	return waybar.Format(data)
}
