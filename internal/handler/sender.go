package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Sender delivers scheduled messages through the bot
type Sender struct {
	bot *tele.Bot
}

// NewSender creates a sender on top of bot
func NewSender(bot *tele.Bot) *Sender {
	return &Sender{bot: bot}
}

// Send sends an HTML text message to the user's private chat
func (s *Sender) Send(userID int64, text string) error {
	_, err := s.bot.Send(tele.ChatID(userID), text, tele.ModeHTML)
	return err
}
