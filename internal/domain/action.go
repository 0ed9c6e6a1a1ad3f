package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when callback data can't be decoded
var ErrUnknownAction = errors.New("unknown action")

// ActionKind identifies a menu action
type ActionKind string

const (
	ActionBack           ActionKind = "back"
	ActionCityMenu       ActionKind = "city_menu"
	ActionLanguageMenu   ActionKind = "lang_menu"
	ActionTempMenu       ActionKind = "temp_menu"
	ActionSelectCity     ActionKind = "city"
	ActionSearchCity     ActionKind = "search_city"
	ActionSelectLanguage ActionKind = "lang"
	ActionSelectUnit     ActionKind = "temp"
)

// Action is a decoded menu tap. Only the field matching Kind is set.
type Action struct {
	Kind     ActionKind
	City     string
	Language Language
	Unit     Unit
}

func Back() Action             { return Action{Kind: ActionBack} }
func OpenCityMenu() Action     { return Action{Kind: ActionCityMenu} }
func OpenLanguageMenu() Action { return Action{Kind: ActionLanguageMenu} }
func OpenTempMenu() Action     { return Action{Kind: ActionTempMenu} }
func SearchCity() Action       { return Action{Kind: ActionSearchCity} }

// SelectCity picks a city from the list
func SelectCity(city string) Action {
	return Action{Kind: ActionSelectCity, City: city}
}

// SelectLanguage picks a display language
func SelectLanguage(lang Language) Action {
	return Action{Kind: ActionSelectLanguage, Language: lang}
}

// SelectUnit picks a temperature unit
func SelectUnit(unit Unit) Action {
	return Action{Kind: ActionSelectUnit, Unit: unit}
}

// Unique returns the button identifier of the action
func (a Action) Unique() string {
	return string(a.Kind)
}

// Payload returns the button data of the action
func (a Action) Payload() string {
	switch a.Kind {
	case ActionSelectCity:
		return a.City
	case ActionSelectLanguage:
		return string(a.Language)
	case ActionSelectUnit:
		return string(a.Unit)
	}
	return ""
}

// String returns callback data in "unique|payload" form
func (a Action) String() string {
	if p := a.Payload(); p != "" {
		return a.Unique() + "|" + p
	}
	return a.Unique()
}

// ParseAction decodes callback data in "unique|payload" form
func ParseAction(data string) (Action, error) {
	unique, payload, _ := strings.Cut(strings.TrimSpace(data), "|")
	payload = strings.TrimSpace(payload)

	switch kind := ActionKind(unique); kind {
	case ActionBack, ActionCityMenu, ActionLanguageMenu, ActionTempMenu, ActionSearchCity:
		return Action{Kind: kind}, nil
	case ActionSelectCity:
		if payload == "" {
			return Action{}, fmt.Errorf("%w: empty city", ErrUnknownAction)
		}
		return SelectCity(payload), nil
	case ActionSelectLanguage:
		lang, err := ParseLanguage(payload)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %w", ErrUnknownAction, err)
		}
		return SelectLanguage(lang), nil
	case ActionSelectUnit:
		unit, err := ParseUnit(payload)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %w", ErrUnknownAction, err)
		}
		return SelectUnit(unit), nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
}
