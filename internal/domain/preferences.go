package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLanguage is returned when a language code is not supported
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrUnknownUnit is returned when a temperature unit is not supported
	ErrUnknownUnit = errors.New("unknown temperature unit")
)

// Language is a display language for weather reports
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
	LanguageKorean  Language = "kr"
)

// Languages returns supported languages in menu order
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageRussian, LanguageKorean}
}

// ParseLanguage converts a language code into Language
func ParseLanguage(code string) (Language, error) {
	for _, l := range Languages() {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// DisplayName returns the language name written in that language
func (l Language) DisplayName() string {
	switch l {
	case LanguageRussian:
		return "Русский"
	case LanguageKorean:
		return "한국어"
	default:
		return "English"
	}
}

// ProviderCode returns the language code understood by the weather provider
func (l Language) ProviderCode() string {
	return string(l)
}

// Unit is a temperature unit
type Unit string

const (
	UnitCelsius    Unit = "Celsius"
	UnitFahrenheit Unit = "Fahrenheit"
	UnitKelvin     Unit = "Kelvin"
)

// Units returns supported temperature units in menu order
func Units() []Unit {
	return []Unit{UnitCelsius, UnitFahrenheit, UnitKelvin}
}

// ParseUnit converts a unit name into Unit
func ParseUnit(name string) (Unit, error) {
	for _, u := range Units() {
		if string(u) == name {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Symbol returns the short unit symbol
func (u Unit) Symbol() string {
	switch u {
	case UnitFahrenheit:
		return "°F"
	case UnitKelvin:
		return "K"
	default:
		return "°C"
	}
}

// ProviderUnits returns the unit system parameter of the weather provider
func (u Unit) ProviderUnits() string {
	switch u {
	case UnitFahrenheit:
		return "imperial"
	case UnitKelvin:
		return "standard"
	default:
		return "metric"
	}
}

// WindSpeedUnit returns the unit the provider uses for wind speed
func (u Unit) WindSpeedUnit() string {
	if u == UnitFahrenheit {
		return "mph"
	}
	return "m/s"
}

// DefaultCity is used until the user picks another one
const DefaultCity = "Almaty"

// Preferences holds user's report settings
type Preferences struct {
	City     string
	Language Language
	Unit     Unit
}

// DefaultPreferences returns settings of a freshly started user
func DefaultPreferences() Preferences {
	return Preferences{
		City:     DefaultCity,
		Language: LanguageEnglish,
		Unit:     UnitCelsius,
	}
}

// UserPreferences pairs a user with their settings
type UserPreferences struct {
	UserID      int64
	Preferences Preferences
}
