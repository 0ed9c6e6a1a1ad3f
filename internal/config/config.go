package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

var notifyTimeRx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Config holds all application configuration
type Config struct {
	BotToken       string
	WeatherAPIKey  string
	WeatherBaseURL string
	NotifyTime     string // HH:MM, local time
	MetricsAddr    string
	LogLevel       string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		WeatherAPIKey:  os.Getenv("API_KEY"),
		WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		NotifyTime:     getEnv("NOTIFY_TIME", "08:00"),
		MetricsAddr:    os.Getenv("METRICS_ADDR"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and formats
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BotToken, validation.Required.Error("BOT_TOKEN is required")),
		validation.Field(&c.WeatherAPIKey, validation.Required.Error("API_KEY is required")),
		validation.Field(&c.WeatherBaseURL, validation.Required),
		validation.Field(&c.NotifyTime,
			validation.Required,
			validation.Match(notifyTimeRx).Error("NOTIFY_TIME must be HH:MM"),
		),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NotifyClock returns hour and minute of the daily notification
func (c *Config) NotifyClock() (hour, minute int) {
	t, err := time.Parse("15:04", c.NotifyTime)
	if err != nil {
		return 8, 0
	}
	return t.Hour(), t.Minute()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
