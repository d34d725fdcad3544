package memory

import (
	"sync"

	"lexibot/internal/domain"
)

// SessionRepo implements repository.SessionRepository in process memory.
// Sessions live until the process exits.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewSessionRepo creates an empty session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[int64]*domain.Session)}
}

// session returns the user's session, creating it if needed. Caller holds mu.
func (r *SessionRepo) session(userID int64) *domain.Session {
	s, ok := r.sessions[userID]
	if !ok {
		s = &domain.Session{}
		r.sessions[userID] = s
	}
	return s
}

// SetLevel sets or overwrites the level, keeping saved words
func (r *SessionRepo) SetLevel(userID int64, level domain.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session(userID).Level = level
}

// GetLevel returns the selected level, if any
func (r *SessionRepo) GetLevel(userID int64) (domain.Level, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[userID]
	if !ok || s.Level == "" {
		return "", false
	}
	return s.Level, true
}

// AddWord appends term unless it is already saved.
// Returns true when the list changed.
func (r *SessionRepo) AddWord(userID int64, term string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(userID)
	if s.HasWord(term) {
		return false
	}
	s.SavedWords = append(s.SavedWords, term)
	return true
}

// ListWords returns saved words in insertion order
func (r *SessionRepo) ListWords(userID int64) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[userID]
	if !ok {
		return []string{}
	}
	out := make([]string, len(s.SavedWords))
	copy(out, s.SavedWords)
	return out
}
