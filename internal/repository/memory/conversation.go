package memory

import (
	"strings"
	"sync"

	"weatherbot/internal/domain"
)

// ConversationRepo keeps per-user conversation modes in process memory.
// Idle users are not stored.
type ConversationRepo struct {
	mu      sync.Mutex
	waiting map[int64]struct{}
}

// NewConversationRepo creates an empty conversation repository
func NewConversationRepo() *ConversationRepo {
	return &ConversationRepo{waiting: make(map[int64]struct{})}
}

// Mode returns user's current conversation mode
func (r *ConversationRepo) Mode(userID int64) domain.ConversationMode {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.waiting[userID]; ok {
		return domain.ModeAwaitingCitySearch
	}
	return domain.ModeIdle
}

// EnterCitySearch makes the next text message of the user a city query
func (r *ConversationRepo) EnterCitySearch(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waiting[userID] = struct{}{}
}

// ConsumeIfAwaiting returns the trimmed text as a city candidate and resets
// the user to idle. Returns false and changes nothing if the user is idle.
func (r *ConversationRepo) ConsumeIfAwaiting(userID int64, text string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.waiting[userID]; !ok {
		return "", false
	}
	delete(r.waiting, userID)
	return strings.TrimSpace(text), true
}

// Reset returns user to idle mode
func (r *ConversationRepo) Reset(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.waiting, userID)
}
