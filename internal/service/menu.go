package service

import (
	"context"
	"fmt"
	"sort"

	"weatherbot/internal/domain"
	"weatherbot/internal/repository"

	"go.uber.org/zap"
)

// Keyboard identifies which inline keyboard accompanies a reply
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMain
	KeyboardCities
	KeyboardLanguages
	KeyboardUnits
	KeyboardBack
)

// Reply is what the bot answers to a user action
type Reply struct {
	Text     string
	Keyboard Keyboard
	// Edit replaces the menu message the action came from instead of sending a new one
	Edit bool
}

var cities = []string{"Almaty", "Astana", "New York", "London", "Moscow", "Berlin", "Tokyo", "Paris"}

// Cities returns the predefined city list in alphabetical order
func Cities() []string {
	res := make([]string, len(cities))
	copy(res, cities)
	sort.Strings(res)
	return res
}

// MenuService handles menu navigation and city search
type MenuService struct {
	prefs   repository.PreferenceRepository
	conv    repository.ConversationRepository
	weather *WeatherService
	logger  *zap.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(
	prefs repository.PreferenceRepository,
	conv repository.ConversationRepository,
	weather *WeatherService,
	logger *zap.Logger,
) *MenuService {
	return &MenuService{
		prefs:   prefs,
		conv:    conv,
		weather: weather,
		logger:  logger,
	}
}

// Start registers the user with default settings and shows the main menu
func (s *MenuService) Start(userID int64) Reply {
	s.prefs.Initialize(userID)
	s.conv.Reset(userID)

	return Reply{Text: "🌤 Hello! Choose an option:", Keyboard: KeyboardMain}
}

// HandleAction applies a menu tap
func (s *MenuService) HandleAction(ctx context.Context, userID int64, action domain.Action) Reply {
	switch action.Kind {
	case domain.ActionBack:
		s.conv.Reset(userID)
		return Reply{Text: "🌤 Main Menu:", Keyboard: KeyboardMain, Edit: true}

	case domain.ActionCityMenu:
		return Reply{Text: "🌍 Choose a city or search:", Keyboard: KeyboardCities, Edit: true}

	case domain.ActionLanguageMenu:
		return Reply{Text: "🌐 Change language:", Keyboard: KeyboardLanguages, Edit: true}

	case domain.ActionTempMenu:
		return Reply{Text: "🌡 Choose a temperature unit:", Keyboard: KeyboardUnits, Edit: true}

	case domain.ActionSelectCity:
		return Reply{Text: s.lookup(ctx, userID, action.City)}

	case domain.ActionSearchCity:
		s.conv.EnterCitySearch(userID)
		return Reply{Text: "🔍 Enter the city name:", Keyboard: KeyboardBack}

	case domain.ActionSelectLanguage:
		s.prefs.SetLanguage(userID, action.Language)
		s.logger.Info("Language changed",
			zap.Int64("user_id", userID),
			zap.String("language", string(action.Language)),
		)
		return Reply{Text: fmt.Sprintf("✅ Language set to %s!", action.Language), Keyboard: KeyboardBack}

	case domain.ActionSelectUnit:
		s.prefs.SetUnit(userID, action.Unit)
		s.logger.Info("Temperature unit changed",
			zap.Int64("user_id", userID),
			zap.String("unit", string(action.Unit)),
		)
		return Reply{Text: fmt.Sprintf("✅ Temperature unit set to %s!", action.Unit), Keyboard: KeyboardBack}
	}

	s.logger.Warn("Unhandled action", zap.String("kind", string(action.Kind)))
	return Reply{Text: "🌤 Main Menu:", Keyboard: KeyboardMain, Edit: true}
}

// HandleText treats text as a city query if the user is searching.
// Returns false when the text isn't expected.
func (s *MenuService) HandleText(ctx context.Context, userID int64, text string) (Reply, bool) {
	city, ok := s.conv.ConsumeIfAwaiting(userID, text)
	if !ok {
		return Reply{}, false
	}
	return Reply{Text: s.lookup(ctx, userID, city)}, true
}

// lookup renders weather for city and remembers it for daily updates when resolved
func (s *MenuService) lookup(ctx context.Context, userID int64, city string) string {
	prefs := s.prefs.GetOrDefault(userID)

	text, found := s.weather.Report(ctx, city, prefs)
	if !found {
		s.logger.Info("City not found", zap.Int64("user_id", userID), zap.String("city", city))
		return text
	}

	s.prefs.SetCity(userID, city)
	return text
}
