package repository

import (
	"lexibot/internal/domain"
)

// SessionRepository defines per-user session operations
type SessionRepository interface {
	SetLevel(userID int64, level domain.Level)
	GetLevel(userID int64) (domain.Level, bool)
	AddWord(userID int64, term string) bool
	ListWords(userID int64) []string
}
