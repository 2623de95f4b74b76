package weather

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/ronniefr/Weather-web-app/internal/models"
)

// Documented bounds for synthesized readings. Every field is an independent
// uniform draw per request.
const (
	tempMin = -10.0
	tempMax = 40.0

	humidityMin = 30
	humidityMax = 90

	pressureMin = 980
	pressureMax = 1040

	windSpeedMax = 20.0
)

// Conditions is the fixed label set a reading's condition is drawn from.
var Conditions = []string{
	"Sunny", "Partly Cloudy", "Cloudy", "Rainy", "Thunderstorm",
	"Snowy", "Foggy", "Windy", "Clear", "Overcast",
}

// Simulator synthesizes weather readings instead of calling a real provider.
// A real API client would implement the same GetByCity signature, so swapping
// one in touches nothing above this package.
type Simulator struct {
	logger  zerolog.Logger
	latency time.Duration
}

func NewSimulator(logger zerolog.Logger, latency time.Duration) *Simulator {
	return &Simulator{logger: logger, latency: latency}
}

// GetByCity returns a fresh reading for city. Calls draw independently and
// nothing is remembered between them; the same city twice may well disagree.
// The simulated provider latency is interruptible through ctx.
func (s *Simulator) GetByCity(ctx context.Context, city string) (models.WeatherReading, error) {
	start := time.Now()

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			s.logger.Warn().
				Str("city", city).
				Err(ctx.Err()).
				Msg("request ended before provider delay elapsed")
			return models.WeatherReading{}, ctx.Err()
		case <-timer.C:
		}
	}

	reading := models.WeatherReading{
		City:      city,
		Temp:      roundTenth(tempMin + rand.Float64()*(tempMax-tempMin)),
		Condition: Conditions[rand.Intn(len(Conditions))],
		Humidity:  humidityMin + rand.Intn(humidityMax-humidityMin+1),
		Pressure:  pressureMin + rand.Intn(pressureMax-pressureMin+1),
		WindSpeed: roundTenth(rand.Float64() * windSpeedMax),
		Timestamp: time.Now(),
	}

	s.logger.Debug().
		Str("city", city).
		Float64("temp", reading.Temp).
		Str("condition", reading.Condition).
		Dur("duration_ms", time.Since(start)).
		Msg("synthesized weather reading")

	return reading, nil
}

// roundTenth keeps values at the one-decimal precision a provider would report.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
