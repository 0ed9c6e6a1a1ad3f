package testutil

import (
	"context"

	"weatherbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWeatherFetcher is a mock for service.WeatherFetcher
type MockWeatherFetcher struct {
	mock.Mock
}

func (m *MockWeatherFetcher) Fetch(ctx context.Context, location string, unit domain.Unit, lang domain.Language) (*domain.WeatherSnapshot, error) {
	args := m.Called(ctx, location, unit, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeatherSnapshot), args.Error(1)
}

// MockSender is a mock for scheduler.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}
