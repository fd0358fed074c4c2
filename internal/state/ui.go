package state

import "storefront/internal/domain/model"

type UIState struct {
	DarkMode     bool                `json:"dark_mode"`
	FlashMessage *model.FlashMessage `json:"flash_message"`
}

func NewUIState() UIState {
	return UIState{}
}

func ApplyUI(s UIState, e Event) UIState {
	switch ev := e.(type) {
	case FlashMessageSet:
		level := ev.Level
		if level == "" {
			level = model.FlashLevelSuccess
		}
		s.FlashMessage = &model.FlashMessage{Message: ev.Message, Level: level}
		return s

	case FlashMessageCleared:
		s.FlashMessage = nil
		return s

	case DarkModeToggled:
		s.DarkMode = !s.DarkMode
		return s

	case DarkModeSet:
		s.DarkMode = ev.Enabled
		return s

	default:
		return s
	}
}
