package meteo

import (
	"math"
	"testing"
	"time"

	"waybar-weather/models"
)

func TestDewPointNeverExceedsTemperature(t *testing.T) {
	for _, tempC := range []float64{-30, -10, 0, 10, 20, 35, 45} {
		for humidity := 0; humidity <= 100; humidity += 5 {
			dew := DewPoint(tempC, humidity)
			if dew > tempC+1e-9 {
				t.Errorf("DewPoint(%v, %d) = %v; want <= %v", tempC, humidity, dew, tempC)
			}
		}
	}
}

func TestDewPointSaturatedAirEqualsTemperature(t *testing.T) {
	for _, tempC := range []float64{-10, 0, 20, 35} {
		dew := DewPoint(tempC, 100)
		if math.Abs(dew-tempC) > 1e-9 {
			t.Errorf("DewPoint(%v, 100) = %v; want %v", tempC, dew, tempC)
		}
	}
}

func TestDewPointKnownValue(t *testing.T) {
	// 20°C at 65% humidity sits near 13.2°C by the Magnus formula.
	dew := DewPoint(20, 65)
	if dew < 13.0 || dew > 13.5 {
		t.Errorf("DewPoint(20, 65) = %v; want about 13.2", dew)
	}
}

func TestDewPointClampsHumidity(t *testing.T) {
	if got, want := DewPoint(20, 150), DewPoint(20, 100); got != want {
		t.Errorf("DewPoint(20, 150) = %v; want clamp to DewPoint(20, 100) = %v", got, want)
	}
	// Humidity 0 is treated as 1, not a logarithm of zero.
	got := DewPoint(20, 0)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("DewPoint(20, 0) = %v; want a finite value", got)
	}
	if want := DewPoint(20, 1); got != want {
		t.Errorf("DewPoint(20, 0) = %v; want DewPoint(20, 1) = %v", got, want)
	}
}

func TestSolarNoon(t *testing.T) {
	noon, ok := SolarNoon(models.ClockTime{Hour: 6}, models.ClockTime{Hour: 18})
	if !ok {
		t.Fatal("SolarNoon(06:00, 18:00) not ok; want ok")
	}
	if want := (models.ClockTime{Hour: 12}); noon != want {
		t.Errorf("SolarNoon(06:00, 18:00) = %v; want %v", noon, want)
	}

	noon, ok = SolarNoon(models.ClockTime{Hour: 6, Minute: 30}, models.ClockTime{Hour: 20, Minute: 15})
	if !ok {
		t.Fatal("SolarNoon(06:30, 20:15) not ok; want ok")
	}
	if want := (models.ClockTime{Hour: 13, Minute: 22}); noon != want {
		t.Errorf("SolarNoon(06:30, 20:15) = %v; want %v", noon, want)
	}
}

func TestSolarNoonSunsetBeforeSunrise(t *testing.T) {
	if noon, ok := SolarNoon(models.ClockTime{Hour: 18}, models.ClockTime{Hour: 6}); ok {
		t.Errorf("SolarNoon(18:00, 06:00) = %v, ok; want not ok", noon)
	}
}

func TestDayLength(t *testing.T) {
	got, ok := DayLength(models.ClockTime{Hour: 6}, models.ClockTime{Hour: 18})
	if !ok {
		t.Fatal("DayLength(06:00, 18:00) not ok; want ok")
	}
	if want := 12 * time.Hour; got != want {
		t.Errorf("DayLength(06:00, 18:00) = %v; want %v", got, want)
	}

	got, ok = DayLength(models.ClockTime{Hour: 6, Minute: 30}, models.ClockTime{Hour: 20, Minute: 15})
	if !ok {
		t.Fatal("DayLength(06:30, 20:15) not ok; want ok")
	}
	if want := 13*time.Hour + 45*time.Minute; got != want {
		t.Errorf("DayLength(06:30, 20:15) = %v; want %v", got, want)
	}
}

func TestDayLengthSunsetBeforeSunrise(t *testing.T) {
	got, ok := DayLength(models.ClockTime{Hour: 18}, models.ClockTime{Hour: 6})
	if ok {
		t.Error("DayLength(18:00, 06:00) ok; want not ok")
	}
	if got != 0 {
		t.Errorf("DayLength(18:00, 06:00) = %v; want 0", got)
	}
}

func TestComputeWithoutAstronomy(t *testing.T) {
	data := models.WeatherData{
		Current: models.CurrentConditions{TempC: 20, Humidity: 65},
	}
	d := Compute(data)
	if d.HasSolarNoon || d.HasDayLength {
		t.Errorf("Compute without astronomy: HasSolarNoon=%v HasDayLength=%v; want both false", d.HasSolarNoon, d.HasDayLength)
	}
	if d.DewPointC == 0 {
		t.Error("Compute did not fill DewPointC")
	}
}

func TestComputeWithAstronomy(t *testing.T) {
	data := models.WeatherData{
		Current: models.CurrentConditions{TempC: 20, Humidity: 65},
		Astro: &models.Astronomy{
			Sunrise: models.ClockTime{Hour: 6, Minute: 30},
			Sunset:  models.ClockTime{Hour: 20, Minute: 15},
		},
	}
	d := Compute(data)
	if !d.HasSolarNoon || !d.HasDayLength {
		t.Fatalf("Compute with astronomy: HasSolarNoon=%v HasDayLength=%v; want both true", d.HasSolarNoon, d.HasDayLength)
	}
	if want := 13*time.Hour + 45*time.Minute; d.DayLength != want {
		t.Errorf("DayLength = %v; want %v", d.DayLength, want)
	}
}
