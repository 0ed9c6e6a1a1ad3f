package handler

import (
	"weatherbot/internal/domain"
	"weatherbot/internal/middleware"
	"weatherbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	menu   *service.MenuService
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, menu *service.MenuService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		menu:   menu,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Logger(h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// All inline buttons are decoded in one place
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// actionBtn creates an inline button carrying action
func actionBtn(markup *tele.ReplyMarkup, text string, action domain.Action) tele.Btn {
	return markup.Data(text, action.Unique(), action.Payload())
}

// keyboardMarkup builds the inline keyboard of a reply, nil for none
func keyboardMarkup(kb service.Keyboard) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	switch kb {
	case service.KeyboardMain:
		markup.Inline(
			markup.Row(actionBtn(markup, "🌍 Choose City", domain.OpenCityMenu())),
			markup.Row(actionBtn(markup, "🌐 Data Language", domain.OpenLanguageMenu())),
			markup.Row(actionBtn(markup, "🌡 Temperature Unit", domain.OpenTempMenu())),
		)

	case service.KeyboardCities:
		rows := []tele.Row{}
		for _, city := range service.Cities() {
			rows = append(rows, markup.Row(actionBtn(markup, city, domain.SelectCity(city))))
		}
		rows = append(rows,
			markup.Row(actionBtn(markup, "🔍 Search City", domain.SearchCity())),
			markup.Row(actionBtn(markup, "⬅️ Back", domain.Back())),
		)
		markup.Inline(rows...)

	case service.KeyboardLanguages:
		rows := []tele.Row{}
		for _, lang := range domain.Languages() {
			rows = append(rows, markup.Row(actionBtn(markup, lang.DisplayName(), domain.SelectLanguage(lang))))
		}
		rows = append(rows, markup.Row(actionBtn(markup, "⬅️ Back", domain.Back())))
		markup.Inline(rows...)

	case service.KeyboardUnits:
		rows := []tele.Row{}
		for _, unit := range domain.Units() {
			text := "🌡 " + string(unit) + " (" + unit.Symbol() + ")"
			rows = append(rows, markup.Row(actionBtn(markup, text, domain.SelectUnit(unit))))
		}
		rows = append(rows, markup.Row(actionBtn(markup, "⬅️ Back", domain.Back())))
		markup.Inline(rows...)

	case service.KeyboardBack:
		markup.Inline(markup.Row(actionBtn(markup, "⬅️ Back to Main Menu", domain.Back())))

	default:
		return nil
	}

	return markup
}
