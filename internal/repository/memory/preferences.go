package memory

import (
	"sort"
	"sync"

	"weatherbot/internal/domain"
)

// PreferenceRepo implements repository.PreferenceRepository in process memory
type PreferenceRepo struct {
	mu    sync.RWMutex
	prefs map[int64]domain.Preferences
}

// NewPreferenceRepo creates an empty preference repository
func NewPreferenceRepo() *PreferenceRepo {
	return &PreferenceRepo{prefs: make(map[int64]domain.Preferences)}
}

// Initialize resets user's settings to defaults, discarding previous ones
func (r *PreferenceRepo) Initialize(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs[userID] = domain.DefaultPreferences()
}

// GetOrDefault returns user's settings or defaults for an unknown user
func (r *PreferenceRepo) GetOrDefault(userID int64) domain.Preferences {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefs, ok := r.prefs[userID]
	if !ok {
		return domain.DefaultPreferences()
	}
	return prefs
}

// SetCity updates user's city
func (r *PreferenceRepo) SetCity(userID int64, city string) {
	r.update(userID, func(p *domain.Preferences) { p.City = city })
}

// SetLanguage updates user's display language
func (r *PreferenceRepo) SetLanguage(userID int64, lang domain.Language) {
	r.update(userID, func(p *domain.Preferences) { p.Language = lang })
}

// SetUnit updates user's temperature unit
func (r *PreferenceRepo) SetUnit(userID int64, unit domain.Unit) {
	r.update(userID, func(p *domain.Preferences) { p.Unit = unit })
}

// All returns a snapshot of every stored record ordered by user ID
func (r *PreferenceRepo) All() []domain.UserPreferences {
	r.mu.RLock()
	res := make([]domain.UserPreferences, 0, len(r.prefs))
	for id, prefs := range r.prefs {
		res = append(res, domain.UserPreferences{UserID: id, Preferences: prefs})
	}
	r.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool { return res[i].UserID < res[j].UserID })
	return res
}

// update applies fn to a full record, so readers never see a partial one.
// A user that never pressed /start gets defaults first.
func (r *PreferenceRepo) update(userID int64, fn func(p *domain.Preferences)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs, ok := r.prefs[userID]
	if !ok {
		prefs = domain.DefaultPreferences()
	}
	fn(&prefs)
	r.prefs[userID] = prefs
}
