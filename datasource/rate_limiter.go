package datasource

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"waybar-weather/models"
)

// RateLimitedSource wraps a Source with client-side rate limiting so a
// misconfigured bar interval cannot hammer the provider's free tier.
type RateLimitedSource struct {
	source  Source
	limiter *rate.Limiter
}

var _ Source = (*RateLimitedSource)(nil)

// NewRateLimitedSource creates a rate limited source. rps is the maximum
// requests per second allowed (fractional values allowed); burst is the
// maximum burst size.
func NewRateLimitedSource(source Source, rps float64, burst int) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchWeatherData fetches weather data, respecting the rate limit.
func (r *RateLimitedSource) FetchWeatherData(ctx context.Context, location string) (models.WeatherData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchWeatherData(ctx, location)
}

// Name returns the underlying source's name.
func (r *RateLimitedSource) Name() string {
	return r.source.Name()
}
