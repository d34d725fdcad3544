package handler

import (
	"testing"

	"lexibot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCallbackData_DecodesAction(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		cleaned string
		action  domain.Action
		data    string
		wantErr error
	}{
		{
			name:    "multi-word add with trailing newline",
			raw:     "add_look after\n",
			cleaned: "add_look after",
			action:  domain.AddAction("look after"),
		},
		{
			name:    "level padded with spaces",
			raw:     " level_B1 ",
			cleaned: "level_B1",
			action:  domain.LevelAction(domain.LevelB1),
		},
		{
			name:    "skip with NUL byte",
			raw:     "skip_cat\x00",
			cleaned: "skip_cat",
			action:  domain.SkipAction("cat"),
		},
		{
			name:    "dictionary with control characters inside",
			raw:     "show_\x01dictionary\t",
			cleaned: "show_dictionary",
			action:  domain.ShowDictionaryAction(),
		},
		{
			name:    "cyrillic term survives",
			raw:     "add_кошка\r\n",
			cleaned: "add_кошка",
			action:  domain.AddAction("кошка"),
		},
		{
			name:    "add with only control characters after prefix",
			raw:     "add_\x00\x7f",
			cleaned: "add_",
			wantErr: domain.ErrUnknownAction,
		},
		{
			name:    "lowercase level is normalized",
			raw:     "level_c1\n",
			cleaned: "level_c1",
			action:  domain.LevelAction(domain.LevelC1),
			data:    "level_C1",
		},
		{
			name:    "unknown level",
			raw:     "level_Z9",
			cleaned: "level_Z9",
			wantErr: domain.ErrUnknownLevel,
		},
		{
			name:    "blank payload",
			raw:     " \n\t",
			cleaned: "",
			wantErr: domain.ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned := cleanCallbackData(tt.raw)
			assert.Equal(t, tt.cleaned, cleaned)

			action, err := domain.ParseAction(cleaned)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.action, action)

			data := tt.data
			if data == "" {
				data = cleaned
			}
			assert.Equal(t, data, action.Data())
		})
	}
}

func TestHandleEditError_Nil(t *testing.T) {
	h := &Handler{}
	assert.NoError(t, h.handleEditError(nil, nil, 0))
}
