package state

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Listener は1イベント適用ごとに呼ばれる。
// Listenerの中からDispatchを呼んではいけない（ロック中に呼ばれるため）。
type Listener func(prev, next RootState, e Event)

type subscription struct {
	id uint64
	fn Listener
}

// Dispatcher はイベントを1つずつ順番に適用して購読者に通知する。
type Dispatcher struct {
	mu        sync.Mutex
	state     RootState
	version   uint64
	listeners []subscription
	nextID    uint64
	logger    *zap.Logger
}

func NewDispatcher(initial RootState, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		state:  initial,
		logger: logger,
	}
}

func (d *Dispatcher) Dispatch(e Event) RootState {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.apply(e)
	return d.state
}

// d.muを保持して呼ぶ
func (d *Dispatcher) apply(e Event) {
	prev := d.state
	next := Reduce(prev, e)
	d.state = next
	d.version++

	d.logger.Debug("event dispatched",
		zap.String("event", e.Name()),
		zap.Uint64("version", d.version),
		zap.Int("cart_items", next.Cart.Len()),
		zap.Bool("catalog_loading", next.Catalog.IsLoading),
	)

	//購読順に通知
	for _, sub := range d.listeners {
		sub.fn(prev, next, e)
	}
}

// DispatchIf は現在の状態からイベントを組み立て、同じロックの中で順に適用する。
// buildがエラーを返した場合は何も適用しない。
func (d *Dispatcher) DispatchIf(build func(RootState) ([]Event, error)) (RootState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	events, err := build(d.state)
	if err != nil {
		return d.state, err
	}
	for _, e := range events {
		d.apply(e)
	}
	return d.state, nil
}

func (d *Dispatcher) State() RootState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Version は適用済みイベント数
func (d *Dispatcher) Version() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version
}

func (d *Dispatcher) Subscribe(l Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.listeners = append(d.listeners, subscription{id: id, fn: l})

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.listeners = slices.DeleteFunc(d.listeners, func(s subscription) bool {
				return s.id == id
			})
		})
	}
}
