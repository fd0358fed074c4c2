package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/state"

	"github.com/google/uuid"
)

// セッションごとのDispatcher。*state.Dispatcherが実装する。
type StateDispatcher interface {
	Dispatch(e state.Event) state.RootState
	DispatchIf(build func(state.RootState) ([]state.Event, error)) (state.RootState, error)
	State() state.RootState
	Version() uint64
}

var _ StateDispatcher = (*state.Dispatcher)(nil)

// 商品データの取得元（ProductUsecaseが実装する）
type ProductProvider interface {
	ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error)
	GetProductDetail(ctx context.Context, productID int64) (model.Product, error)
}

// 配送先の検証
type DeliveryValidator interface {
	ValidateDelivery(info model.DeliveryInfo) error
}

// ユーザー向け通知。Eventは他のイベントとまとめて適用するときに使う。
type Notifier interface {
	Notify(ctx context.Context, d StateDispatcher, message string, level model.FlashLevel)
	Event(message string, level model.FlashLevel) state.Event
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type IDGenerator interface {
	NewID() (string, error)
}

// UUIDv4で注文IDを採番
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
