package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherbot/internal/domain"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// DefaultBaseURL is the OpenWeatherMap current weather endpoint
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// NotFoundMessage is shown when a location can't be resolved
const NotFoundMessage = "⚠️ City not found! Please check the name and try again."

var (
	// ErrNotFound covers unknown locations and every provider failure
	ErrNotFound = errors.New("city not found")

	errServerError = errors.New("provider server error")
)

const timeLayout = "2006-01-02 15:04:05"

// Client fetches current weather from OpenWeatherMap
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	circuit    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewClient creates a weather client. Requests are bounded only by httpClient settings.
func NewClient(httpClient *http.Client, baseURL, apiKey string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		circuit:    cb,
		logger:     logger,
	}
}

type payload struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// Fetch returns current weather for location. Any failure is reported as ErrNotFound.
func (c *Client) Fetch(ctx context.Context, location string, unit domain.Unit, lang domain.Language) (*domain.WeatherSnapshot, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", ErrNotFound)
	}

	values := url.Values{}
	values.Set("q", location)
	values.Set("lang", lang.ProviderCode())
	values.Set("units", unit.ProviderUnits())
	values.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		// Only outages count against the breaker, unknown cities are regular answers
		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		c.logger.Warn("Weather provider request failed",
			zap.String("location", location),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Weather provider returned non-OK status",
			zap.String("location", location),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		c.logger.Warn("Failed to decode weather response",
			zap.String("location", location),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	snapshot := &domain.WeatherSnapshot{
		Location:  p.Name,
		Temp:      p.Main.Temp,
		FeelsLike: p.Main.FeelsLike,
		TempMin:   p.Main.TempMin,
		TempMax:   p.Main.TempMax,
		Humidity:  p.Main.Humidity,
		WindSpeed: p.Wind.Speed,
		Sunrise:   formatUnix(p.Sys.Sunrise),
		Sunset:    formatUnix(p.Sys.Sunset),
	}
	if len(p.Weather) > 0 {
		snapshot.Description = p.Weather[0].Description
	}

	return snapshot, nil
}

// formatUnix converts epoch seconds to UTC YYYY-MM-DD HH:MM:SS
func formatUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(timeLayout)
}
