// Package weatherapi fetches and parses weather data from the
// WeatherAPI.com forecast endpoint.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"waybar-weather/datasource"
	"waybar-weather/models"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// Source is a WeatherAPI.com data source.
type Source struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Ensure Source implements datasource.Source.
var _ datasource.Source = (*Source)(nil)

// NewSource creates a WeatherAPI.com source. An empty baseURL selects
// the production endpoint.
func NewSource(apiKey, baseURL string, timeout time.Duration) *Source {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Source{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name as shown in the error tooltip.
func (s *Source) Name() string {
	return "WeatherAPI.com"
}

// FetchWeatherData fetches the current weather and today's forecast for
// a location and parses it into the domain model. One forecast.json call
// with days=1 carries current conditions, astronomy and hourly data.
func (s *Source) FetchWeatherData(ctx context.Context, location string) (models.WeatherData, error) {
	endpoint := fmt.Sprintf("%s/forecast.json", s.baseURL)
	params := url.Values{}
	params.Add("key", s.apiKey)
	params.Add("q", location)
	params.Add("days", "1")
	params.Add("aqi", "no")
	params.Add("alerts", "no")

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.WeatherData{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var raw Response
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.WeatherData{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return Parse(&raw)
}
