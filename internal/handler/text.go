package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles text messages, which only matter during city search
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	reply, ok := h.menu.HandleText(context.Background(), userID, text)
	if !ok {
		h.logger.Debug("Ignoring text outside of city search", zap.Int64("user_id", userID))
		return nil
	}

	return h.render(c, reply)
}
