package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_State(t *testing.T) {
	var empty *Session
	assert.Equal(t, StateNoLevel, empty.State())
	assert.Equal(t, StateNoLevel, (&Session{}).State())
	assert.Equal(t, StateLevelSelected, (&Session{Level: LevelA2}).State())
}

func TestSession_HasWord(t *testing.T) {
	s := &Session{SavedWords: []string{"apple", "river"}}

	assert.True(t, s.HasWord("apple"))
	assert.False(t, s.HasWord("Apple"))
	assert.False(t, (*Session)(nil).HasWord("apple"))
}
