package testutil

import (
	"weatherbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSnapshot creates a test weather snapshot
func NewTestSnapshot(location, description string, temp, feelsLike float64) *domain.WeatherSnapshot {
	return &domain.WeatherSnapshot{
		Location:    location,
		Description: description,
		Temp:        temp,
		FeelsLike:   feelsLike,
		TempMin:     temp - 2,
		TempMax:     temp + 2,
		Humidity:    70,
		WindSpeed:   3.5,
		Sunrise:     "2024-06-15 03:43:00",
		Sunset:      "2024-06-15 20:21:00",
	}
}
