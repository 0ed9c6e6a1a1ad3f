package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weatherbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const londonResponse = `{
	"name": "London",
	"weather": [{"description": "light rain"}],
	"main": {"temp": 12.5, "feels_like": 11.04, "temp_min": 10, "temp_max": 14.2, "humidity": 81},
	"wind": {"speed": 4.12},
	"sys": {"sunrise": 1700000000, "sunset": 1700032400}
}`

func newTestServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, londonResponse, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "London", q.Get("q"))
		assert.Equal(t, "en", q.Get("lang"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "secret", q.Get("appid"))
	})

	client := NewClient(srv.Client(), srv.URL, "secret", zap.NewNop())

	snapshot, err := client.Fetch(context.Background(), "London", domain.UnitCelsius, domain.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, &domain.WeatherSnapshot{
		Location:    "London",
		Description: "light rain",
		Temp:        12.5,
		FeelsLike:   11.04,
		TempMin:     10,
		TempMax:     14.2,
		Humidity:    81,
		WindSpeed:   4.12,
		Sunrise:     "2023-11-14 22:13:20",
		Sunset:      "2023-11-15 07:13:20",
	}, snapshot)
}

func TestClient_FetchQueryParams(t *testing.T) {
	tests := []struct {
		name  string
		unit  domain.Unit
		lang  domain.Language
		units string
		code  string
	}{
		{name: "fahrenheit russian", unit: domain.UnitFahrenheit, lang: domain.LanguageRussian, units: "imperial", code: "ru"},
		{name: "kelvin korean", unit: domain.UnitKelvin, lang: domain.LanguageKorean, units: "standard", code: "kr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, londonResponse, func(r *http.Request) {
				assert.Equal(t, tt.units, r.URL.Query().Get("units"))
				assert.Equal(t, tt.code, r.URL.Query().Get("lang"))
			})
			client := NewClient(srv.Client(), srv.URL, "secret", zap.NewNop())

			_, err := client.Fetch(context.Background(), " London ", tt.unit, tt.lang)
			assert.NoError(t, err)
		})
	}
}

func TestClient_FetchNotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unknown city", status: http.StatusNotFound, body: `{"cod":"404","message":"city not found"}`},
		{name: "bad api key", status: http.StatusUnauthorized, body: `{"cod":401}`},
		{name: "server error", status: http.StatusInternalServerError, body: ""},
		{name: "broken json", status: http.StatusOK, body: `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)
			client := NewClient(srv.Client(), srv.URL, "secret", zap.NewNop())

			snapshot, err := client.Fetch(context.Background(), "Londn", domain.UnitCelsius, domain.LanguageEnglish)

			assert.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, snapshot)
		})
	}
}

func TestClient_FetchEmptyLocation(t *testing.T) {
	called := false
	srv := newTestServer(t, http.StatusOK, londonResponse, func(r *http.Request) { called = true })
	client := NewClient(srv.Client(), srv.URL, "secret", zap.NewNop())

	_, err := client.Fetch(context.Background(), "   ", domain.UnitCelsius, domain.LanguageEnglish)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestClient_FetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(http.DefaultClient, url, "secret", zap.NewNop())

	_, err := client.Fetch(context.Background(), "London", domain.UnitCelsius, domain.LanguageEnglish)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormatUnix(t *testing.T) {
	assert.Equal(t, "1970-01-01 00:00:00", formatUnix(0))
	assert.Equal(t, "2023-11-14 22:13:20", formatUnix(1700000000))
}
