package domain

import (
	"errors"
	"strings"
)

// ErrUnknownLevel is returned when a value is not one of the supported levels
var ErrUnknownLevel = errors.New("unknown level")

// Level represents a CEFR proficiency tier
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels returns all supported levels in menu order
func Levels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// Valid reports whether the level belongs to the supported set
func (l Level) Valid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

func (l Level) String() string {
	return string(l)
}

// ParseLevel converts user or callback input into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", ErrUnknownLevel
	}
	return level, nil
}
