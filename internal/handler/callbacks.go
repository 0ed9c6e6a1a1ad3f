package handler

import (
	"context"
	"strings"
	"unicode"

	"weatherbot/internal/domain"
	"weatherbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Pressing the same menu button twice edits the message to identical content
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback decodes ALL callback queries into menu actions
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Buttons without a registered endpoint arrive as "\funique|payload"
	data := cleanCallbackData(callback.Data)
	if callback.Unique != "" {
		data = callback.Unique + "|" + data
	}

	action, err := domain.ParseAction(data)
	if err != nil {
		h.logger.Warn("Unhandled callback",
			zap.String("data", data),
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Respond()
	}

	reply := h.menu.HandleAction(context.Background(), c.Sender().ID, action)
	return h.render(c, reply)
}

// render edits the originating menu message or sends a new one
func (h *Handler) render(c tele.Context, reply service.Reply) error {
	userID := c.Sender().ID

	opts := []interface{}{tele.ModeHTML}
	if markup := keyboardMarkup(reply.Keyboard); markup != nil {
		opts = append(opts, markup)
	}

	if c.Callback() == nil {
		return c.Send(reply.Text, opts...)
	}

	if reply.Edit {
		if err := c.Edit(reply.Text, opts...); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(reply.Text, opts...)
		}
		return c.Respond()
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(reply.Text, opts...)
}
