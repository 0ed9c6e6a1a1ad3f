package domain

// WeatherSnapshot is a one-shot view of current weather, never stored
type WeatherSnapshot struct {
	Location    string
	Description string
	Temp        float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	WindSpeed   float64
	Sunrise     string // UTC, YYYY-MM-DD HH:MM:SS
	Sunset      string // UTC, YYYY-MM-DD HH:MM:SS
}
