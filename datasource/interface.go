package datasource

import (
	"context"

	"waybar-weather/models"
)

// Source defines the interface for a weather data provider.
type Source interface {
	// Name returns the provider's name, shown verbatim in the error tooltip.
	Name() string

	// FetchWeatherData fetches and parses current weather plus the
	// current day's forecast for a location.
	FetchWeatherData(ctx context.Context, location string) (models.WeatherData, error)
}
