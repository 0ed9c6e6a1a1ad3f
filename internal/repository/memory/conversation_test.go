package memory

import (
	"testing"

	"weatherbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestConversationRepo_ConsumeIfAwaiting(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "plain", text: "London", expected: "London"},
		{name: "padded", text: "  New York \n", expected: "New York"},
		{name: "blank", text: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewConversationRepo()
			repo.EnterCitySearch(1)
			assert.Equal(t, domain.ModeAwaitingCitySearch, repo.Mode(1))

			city, ok := repo.ConsumeIfAwaiting(1, tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, city)
			assert.Equal(t, domain.ModeIdle, repo.Mode(1))

			// second message is not a search query anymore
			city, ok = repo.ConsumeIfAwaiting(1, tt.text)
			assert.False(t, ok)
			assert.Empty(t, city)
		})
	}
}

func TestConversationRepo_IdleUserUntouched(t *testing.T) {
	repo := NewConversationRepo()

	_, ok := repo.ConsumeIfAwaiting(1, "Paris")

	assert.False(t, ok)
	assert.Equal(t, domain.ModeIdle, repo.Mode(1))
}

func TestConversationRepo_PerUser(t *testing.T) {
	repo := NewConversationRepo()
	repo.EnterCitySearch(1)

	_, ok := repo.ConsumeIfAwaiting(2, "Paris")
	assert.False(t, ok)
	assert.Equal(t, domain.ModeAwaitingCitySearch, repo.Mode(1))
}

func TestConversationRepo_Reset(t *testing.T) {
	repo := NewConversationRepo()
	repo.EnterCitySearch(1)
	repo.EnterCitySearch(1)

	repo.Reset(1)

	assert.Equal(t, domain.ModeIdle, repo.Mode(1))
	_, ok := repo.ConsumeIfAwaiting(1, "Paris")
	assert.False(t, ok)
}
