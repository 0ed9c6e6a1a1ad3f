package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	assert.Equal(t, "Almaty", prefs.City)
	assert.Equal(t, LanguageEnglish, prefs.Language)
	assert.Equal(t, UnitCelsius, prefs.Unit)
}

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage("ru")
	assert.NoError(t, err)
	assert.Equal(t, LanguageRussian, lang)

	_, err = ParseLanguage("ko")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestUnit_ProviderUnits(t *testing.T) {
	tests := []struct {
		unit     Unit
		expected string
		wind     string
	}{
		{unit: UnitCelsius, expected: "metric", wind: "m/s"},
		{unit: UnitFahrenheit, expected: "imperial", wind: "mph"},
		{unit: UnitKelvin, expected: "standard", wind: "m/s"},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.unit.ProviderUnits())
			assert.Equal(t, tt.wind, tt.unit.WindSpeedUnit())
		})
	}
}

func TestParseUnit(t *testing.T) {
	unit, err := ParseUnit("Fahrenheit")
	assert.NoError(t, err)
	assert.Equal(t, UnitFahrenheit, unit)

	_, err = ParseUnit("celsius")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}
