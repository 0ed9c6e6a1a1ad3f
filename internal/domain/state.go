package domain

// ConversationMode represents what the bot expects from the user's next text message
type ConversationMode string

const (
	ModeIdle               ConversationMode = "idle"
	ModeAwaitingCitySearch ConversationMode = "awaiting_city_search"
)
