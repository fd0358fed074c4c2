// Package state holds the per-session catalog, cart and ui stores and the
// pure transition functions that move them from one event to the next.
package state

import "storefront/internal/domain/model"

// Event is the closed set of things that can happen to a session.
// Only types declared in this package implement it.
type Event interface {
	Name() string
	isEvent()
}

// 商品一覧のロード
type ProductsLoadRequested struct{}

type ProductsLoadSucceeded struct {
	Products []model.Product
}

type ProductsLoadFailed struct {
	Reason string
}

// 商品詳細のロード（一覧を1件で置き換える）
type ProductLoadRequested struct {
	ID int64
}

type ProductLoadSucceeded struct {
	Product model.Product
}

type ProductLoadFailed struct {
	ID     int64
	Reason string
}

type ProductsCleared struct{}

// カート
type ItemAdded struct {
	ProductID string
}

type ItemRemoved struct {
	ProductID string
}

type CheckoutSucceeded struct {
	Order model.Order
}

// UI
type FlashMessageSet struct {
	Message string
	Level   model.FlashLevel
}

type FlashMessageCleared struct{}

type DarkModeToggled struct{}

type DarkModeSet struct {
	Enabled bool
}

func (ProductsLoadRequested) Name() string { return "products/load_requested" }
func (ProductsLoadSucceeded) Name() string { return "products/load_succeeded" }
func (ProductsLoadFailed) Name() string    { return "products/load_failed" }
func (ProductLoadRequested) Name() string  { return "products/load_one_requested" }
func (ProductLoadSucceeded) Name() string  { return "products/load_one_succeeded" }
func (ProductLoadFailed) Name() string     { return "products/load_one_failed" }
func (ProductsCleared) Name() string       { return "products/cleared" }
func (ItemAdded) Name() string             { return "cart/item_added" }
func (ItemRemoved) Name() string           { return "cart/item_removed" }
func (CheckoutSucceeded) Name() string     { return "cart/checkout_succeeded" }
func (FlashMessageSet) Name() string       { return "ui/flash_message_set" }
func (FlashMessageCleared) Name() string   { return "ui/flash_message_cleared" }
func (DarkModeToggled) Name() string       { return "ui/dark_mode_toggled" }
func (DarkModeSet) Name() string           { return "ui/dark_mode_set" }

func (ProductsLoadRequested) isEvent() {}
func (ProductsLoadSucceeded) isEvent() {}
func (ProductsLoadFailed) isEvent()    {}
func (ProductLoadRequested) isEvent()  {}
func (ProductLoadSucceeded) isEvent()  {}
func (ProductLoadFailed) isEvent()     {}
func (ProductsCleared) isEvent()       {}
func (ItemAdded) isEvent()             {}
func (ItemRemoved) isEvent()           {}
func (CheckoutSucceeded) isEvent()     {}
func (FlashMessageSet) isEvent()       {}
func (FlashMessageCleared) isEvent()   {}
func (DarkModeToggled) isEvent()       {}
func (DarkModeSet) isEvent()           {}
