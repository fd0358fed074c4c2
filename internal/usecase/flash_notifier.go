package usecase

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/state"
)

// フラッシュメッセージとしてUIストアに通知する
type FlashNotifier struct{}

func NewFlashNotifier() *FlashNotifier {
	return &FlashNotifier{}
}

func (n *FlashNotifier) Notify(ctx context.Context, d StateDispatcher, message string, level model.FlashLevel) {
	d.Dispatch(n.Event(message, level))
}

func (n *FlashNotifier) Event(message string, level model.FlashLevel) state.Event {
	return state.FlashMessageSet{Message: message, Level: level}
}
