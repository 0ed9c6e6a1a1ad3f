package middleware

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logger creates middleware that logs every update and recovers handler panics
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			start := time.Now()
			fields := updateFields(c)

			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic: %v", r)
					logger.Error("Recovered from panic", append(fields, zap.Any("panic", r))...)
				}
			}()

			err = next(c)

			fields = append(fields, zap.Duration("elapsed", time.Since(start)))
			if err != nil {
				logger.Error("Failed to handle update", append(fields, zap.Error(err))...)
				return err
			}

			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

func updateFields(c tele.Context) []zap.Field {
	fields := []zap.Field{}
	if sender := c.Sender(); sender != nil {
		fields = append(fields, zap.Int64("user_id", sender.ID))
	}
	if cb := c.Callback(); cb != nil {
		fields = append(fields, zap.String("callback", cb.Data))
	} else if text := c.Text(); text != "" {
		fields = append(fields, zap.Int("text_len", len(text)))
	}
	return fields
}
