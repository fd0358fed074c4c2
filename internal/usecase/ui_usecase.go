package usecase

import "storefront/internal/state"

type UIUsecase struct{}

func NewUIUsecase() *UIUsecase {
	return &UIUsecase{}
}

func (u *UIUsecase) ToggleDarkMode(d StateDispatcher) state.RootState {
	return d.Dispatch(state.DarkModeToggled{})
}

func (u *UIUsecase) SetDarkMode(d StateDispatcher, enabled bool) state.RootState {
	return d.Dispatch(state.DarkModeSet{Enabled: enabled})
}

func (u *UIUsecase) ClearFlashMessage(d StateDispatcher) state.RootState {
	return d.Dispatch(state.FlashMessageCleared{})
}
