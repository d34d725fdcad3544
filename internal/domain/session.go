package domain

import "errors"

// ErrLevelNotSelected is returned when a word is requested before a level is chosen
var ErrLevelNotSelected = errors.New("level not selected")

// SessionState is derived from session contents, never stored
type SessionState string

const (
	StateNoLevel       SessionState = "no_level"
	StateLevelSelected SessionState = "level_selected"
)

// Session holds per-user training data
type Session struct {
	Level      Level
	SavedWords []string
}

// State returns the conversation state implied by the session
func (s *Session) State() SessionState {
	if s == nil || s.Level == "" {
		return StateNoLevel
	}
	return StateLevelSelected
}

// HasWord reports whether term is already in the saved list
func (s *Session) HasWord(term string) bool {
	if s == nil {
		return false
	}
	for _, w := range s.SavedWords {
		if w == term {
			return true
		}
	}
	return false
}
