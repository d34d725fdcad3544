package service

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/repository"
)

// SessionService handles per-user level and word list
type SessionService struct {
	repo repository.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// SelectLevel validates and stores the user's level
func (s *SessionService) SelectLevel(userID int64, level domain.Level) error {
	if !level.Valid() {
		return fmt.Errorf("select level %q: %w", level, domain.ErrUnknownLevel)
	}
	s.repo.SetLevel(userID, level)
	return nil
}

// Level returns the user's level if one was selected
func (s *SessionService) Level(userID int64) (domain.Level, bool) {
	return s.repo.GetLevel(userID)
}

// State returns the conversation state of the user
func (s *SessionService) State(userID int64) domain.SessionState {
	if _, ok := s.repo.GetLevel(userID); ok {
		return domain.StateLevelSelected
	}
	return domain.StateNoLevel
}

// SaveWord adds a term to the user's list. Returns true if it was not there yet.
func (s *SessionService) SaveWord(userID int64, term string) (bool, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return false, fmt.Errorf("word cannot be empty")
	}
	return s.repo.AddWord(userID, term), nil
}

// Dictionary returns saved words in insertion order
func (s *SessionService) Dictionary(userID int64) []string {
	words := s.repo.ListWords(userID)
	if words == nil {
		return []string{}
	}
	return words
}
