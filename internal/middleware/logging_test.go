package middleware

import (
	"errors"
	"testing"

	"weatherbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newTestContext(t *testing.T, upd tele.Update) tele.Context {
	t.Helper()
	bot, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)
	return bot.NewContext(upd)
}

func TestLogger(t *testing.T) {
	errHandler := errors.New("handler failed")

	tests := []struct {
		name    string
		next    tele.HandlerFunc
		wantErr string
	}{
		{
			name: "passes through",
			next: func(c tele.Context) error { return nil },
		},
		{
			name:    "returns handler error",
			next:    func(c tele.Context) error { return errHandler },
			wantErr: "handler failed",
		},
		{
			name:    "recovers panic",
			next:    func(c tele.Context) error { panic("boom") },
			wantErr: "handler panic: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tele.Update{
				Message: &tele.Message{Sender: &tele.User{ID: 42}, Text: "London"},
			})

			err := Logger(testutil.NewTestLogger())(tt.next)(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUpdateFields(t *testing.T) {
	t.Run("callback", func(t *testing.T) {
		c := newTestContext(t, tele.Update{
			Callback: &tele.Callback{Sender: &tele.User{ID: 7}, Data: "city|Paris"},
		})
		assert.Len(t, updateFields(c), 2)
	})

	t.Run("no sender", func(t *testing.T) {
		c := newTestContext(t, tele.Update{})
		assert.Empty(t, updateFields(c))
	})
}
