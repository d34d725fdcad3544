package domain

import (
	"errors"
	"strings"
)

// ErrUnknownAction is returned for callback data that does not decode to an action
var ErrUnknownAction = errors.New("unknown action")

// MaxCallbackData is the Telegram limit for inline button payloads, in bytes
const MaxCallbackData = 64

// ActionKind identifies a conversation transition triggered by a button
type ActionKind int

const (
	ActionLevel ActionKind = iota + 1
	ActionAdd
	ActionSkip
	ActionShowDictionary
)

const (
	prefixLevel        = "level_"
	prefixAdd          = "add_"
	prefixSkip         = "skip_"
	dataShowDictionary = "show_dictionary"
)

func (k ActionKind) String() string {
	switch k {
	case ActionLevel:
		return "level"
	case ActionAdd:
		return "add"
	case ActionSkip:
		return "skip"
	case ActionShowDictionary:
		return "show_dictionary"
	}
	return "unknown"
}

// Action is a decoded button identifier
type Action struct {
	Kind  ActionKind
	Param string
}

// LevelAction builds the action for choosing a level
func LevelAction(level Level) Action {
	return Action{Kind: ActionLevel, Param: string(level)}
}

// AddAction builds the action for saving a term
func AddAction(term string) Action {
	return Action{Kind: ActionAdd, Param: term}
}

// SkipAction builds the action for skipping a term
func SkipAction(term string) Action {
	return Action{Kind: ActionSkip, Param: term}
}

// ShowDictionaryAction builds the action for listing saved words
func ShowDictionaryAction() Action {
	return Action{Kind: ActionShowDictionary}
}

// Data encodes the action into callback data
func (a Action) Data() string {
	switch a.Kind {
	case ActionLevel:
		return prefixLevel + a.Param
	case ActionAdd:
		return prefixAdd + a.Param
	case ActionSkip:
		return prefixSkip + a.Param
	case ActionShowDictionary:
		return dataShowDictionary
	}
	return ""
}

// ParseAction decodes callback data produced by Action.Data
func ParseAction(data string) (Action, error) {
	switch {
	case data == dataShowDictionary:
		return ShowDictionaryAction(), nil
	case strings.HasPrefix(data, prefixLevel):
		level, err := ParseLevel(strings.TrimPrefix(data, prefixLevel))
		if err != nil {
			return Action{}, err
		}
		return LevelAction(level), nil
	case strings.HasPrefix(data, prefixAdd):
		return termAction(ActionAdd, strings.TrimPrefix(data, prefixAdd))
	case strings.HasPrefix(data, prefixSkip):
		return termAction(ActionSkip, strings.TrimPrefix(data, prefixSkip))
	}
	return Action{}, ErrUnknownAction
}

func termAction(kind ActionKind, term string) (Action, error) {
	if strings.TrimSpace(term) == "" {
		return Action{}, ErrUnknownAction
	}
	return Action{Kind: kind, Param: term}, nil
}

// FitsCallback reports whether add and skip buttons for term stay within MaxCallbackData
func FitsCallback(term string) bool {
	return len(prefixSkip)+len(term) <= MaxCallbackData
}
