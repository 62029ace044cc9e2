package datasource

import (
	"context"
	"testing"

	"waybar-weather/models"
)

type fakeSource struct {
	calls int
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) FetchWeatherData(ctx context.Context, location string) (models.WeatherData, error) {
	f.calls++
	return models.WeatherData{Location: models.Location{Name: location}}, nil
}

func TestRateLimitedSourcePassesThrough(t *testing.T) {
	fake := &fakeSource{}
	src := NewRateLimitedSource(fake, 1.0, 1)

	data, err := src.FetchWeatherData(context.Background(), "Wellington")
	if err != nil {
		t.Fatalf("FetchWeatherData() returned error: %v", err)
	}
	if data.Location.Name != "Wellington" {
		t.Errorf("Location.Name = %q; want Wellington", data.Location.Name)
	}
	if fake.calls != 1 {
		t.Errorf("underlying source called %d times; want 1", fake.calls)
	}
	if src.Name() != "fake" {
		t.Errorf("Name() = %q; want fake", src.Name())
	}
}

func TestRateLimitedSourceCanceledContext(t *testing.T) {
	fake := &fakeSource{}
	// Zero burst means the limiter can never admit the request, so the
	// wait must end with the context error instead of a fetch.
	src := NewRateLimitedSource(fake, 0.001, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.FetchWeatherData(ctx, "Wellington"); err == nil {
		t.Fatal("FetchWeatherData() = nil error; want rate limit wait error")
	}
	if fake.calls != 0 {
		t.Errorf("underlying source called %d times; want 0", fake.calls)
	}
}
