package repository

import (
	"weatherbot/internal/domain"
)

// PreferenceRepository defines user settings operations
type PreferenceRepository interface {
	Initialize(userID int64)
	GetOrDefault(userID int64) domain.Preferences
	SetCity(userID int64, city string)
	SetLanguage(userID int64, lang domain.Language)
	SetUnit(userID int64, unit domain.Unit)
	All() []domain.UserPreferences
}

// ConversationRepository defines per-user conversation mode operations
type ConversationRepository interface {
	Mode(userID int64) domain.ConversationMode
	EnterCitySearch(userID int64)
	ConsumeIfAwaiting(userID int64, text string) (string, bool)
	Reset(userID int64)
}
