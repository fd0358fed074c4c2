package state_test

import (
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestApplyUI_FlashMessage(t *testing.T) {
	s := state.ApplyUI(state.NewUIState(), state.FlashMessageSet{Message: "added"})
	if assert.NotNil(t, s.FlashMessage) {
		assert.Equal(t, "added", s.FlashMessage.Message)
		assert.Equal(t, model.FlashLevelSuccess, s.FlashMessage.Level)
	}

	s = state.ApplyUI(s, state.FlashMessageSet{Message: "boom", Level: model.FlashLevelError})
	assert.Equal(t, model.FlashLevelError, s.FlashMessage.Level)

	s = state.ApplyUI(s, state.FlashMessageCleared{})
	assert.Nil(t, s.FlashMessage)
}

func TestApplyUI_DarkMode(t *testing.T) {
	s := state.ApplyUI(state.NewUIState(), state.DarkModeToggled{})
	assert.True(t, s.DarkMode)

	s = state.ApplyUI(s, state.DarkModeToggled{})
	assert.False(t, s.DarkMode)

	s = state.ApplyUI(s, state.DarkModeSet{Enabled: true})
	assert.True(t, s.DarkMode)
}
