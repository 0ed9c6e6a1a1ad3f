package weather

import (
	"fmt"
	"html"
	"strings"

	"weatherbot/internal/domain"
	"weatherbot/internal/i18n"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formatter renders snapshots as HTML messages
type Formatter struct {
	catalog *i18n.Catalog
}

// NewFormatter creates a formatter using labels from catalog
func NewFormatter(catalog *i18n.Catalog) *Formatter {
	return &Formatter{catalog: catalog}
}

// Format renders s with labels of lang and the name of unit
func (f *Formatter) Format(s *domain.WeatherSnapshot, unit domain.Unit, lang domain.Language) string {
	t := f.catalog.For(lang)
	description := cases.Title(language.Und).String(s.Description)

	var b strings.Builder
	fmt.Fprintf(&b, "🌍 <b>%s:</b> %s\n", t.T("city"), html.EscapeString(s.Location))
	fmt.Fprintf(&b, "🌤 <b>%s:</b> %s\n", t.T("weather"), html.EscapeString(description))
	fmt.Fprintf(&b, "🌡 <b>%s:</b> %.1f° (%s) (%s %.1f°)\n",
		t.T("temperature"), s.Temp, unit, t.T("feels_like"), s.FeelsLike)
	fmt.Fprintf(&b, "🌡 <b>%s:</b> %.1f° (%s) | <b>%s:</b> %.1f° (%s)\n",
		t.T("min"), s.TempMin, unit, t.T("max"), s.TempMax, unit)
	fmt.Fprintf(&b, "💧 <b>%s:</b> %d%%\n", t.T("humidity"), s.Humidity)
	fmt.Fprintf(&b, "💨 <b>%s:</b> %.1f %s\n", t.T("wind_speed"), s.WindSpeed, unit.WindSpeedUnit())
	fmt.Fprintf(&b, "🌅 <b>%s:</b> %s\n", t.T("sunrise"), s.Sunrise)
	fmt.Fprintf(&b, "🌄 <b>%s:</b> %s\n", t.T("sunset"), s.Sunset)
	return b.String()
}
