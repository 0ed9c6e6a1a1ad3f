package service

import (
	"context"
	"errors"

	"weatherbot/internal/domain"
	"weatherbot/internal/metrics"
	"weatherbot/internal/weather"

	"go.uber.org/zap"
)

// WeatherFetcher fetches current weather for a location
type WeatherFetcher interface {
	Fetch(ctx context.Context, location string, unit domain.Unit, lang domain.Language) (*domain.WeatherSnapshot, error)
}

// WeatherService turns weather lookups into user-facing text
type WeatherService struct {
	fetcher   WeatherFetcher
	formatter *weather.Formatter
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewWeatherService creates a new weather service
func NewWeatherService(
	fetcher WeatherFetcher,
	formatter *weather.Formatter,
	m *metrics.Metrics,
	logger *zap.Logger,
) *WeatherService {
	return &WeatherService{
		fetcher:   fetcher,
		formatter: formatter,
		metrics:   m,
		logger:    logger,
	}
}

// Report returns formatted weather for city using prefs' unit and language.
// When the city can't be resolved it returns the not-found message and false.
func (s *WeatherService) Report(ctx context.Context, city string, prefs domain.Preferences) (string, bool) {
	snapshot, err := s.fetcher.Fetch(ctx, city, prefs.Unit, prefs.Language)
	if err != nil {
		if !errors.Is(err, weather.ErrNotFound) {
			s.logger.Warn("Unexpected weather error", zap.String("city", city), zap.Error(err))
		}
		s.metrics.ObserveWeather(false)
		return weather.NotFoundMessage, false
	}

	s.metrics.ObserveWeather(true)
	return s.formatter.Format(snapshot, prefs.Unit, prefs.Language), true
}
