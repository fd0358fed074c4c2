package state_test

import (
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestApplyCart_ItemAdded_Idempotent(t *testing.T) {
	s := state.NewCartState()
	for i := 0; i < 5; i++ {
		s = state.ApplyCart(s, state.ItemAdded{ProductID: "x"})
	}

	assert.Equal(t, []string{"x"}, s.ProductIDs)
}

func TestApplyCart_ItemAdded_KeepsInsertionOrder(t *testing.T) {
	s := state.NewCartState()
	for _, id := range []string{"3", "1", "2", "1", "3"} {
		s = state.ApplyCart(s, state.ItemAdded{ProductID: id})
	}

	assert.Equal(t, []string{"3", "1", "2"}, s.ProductIDs)
}

func TestApplyCart_ItemAdded_DoesNotMutateInput(t *testing.T) {
	ids := make([]string, 1, 4)
	ids[0] = "1"
	s := state.CartState{ProductIDs: ids, Price: 12}

	a := state.ApplyCart(s, state.ItemAdded{ProductID: "2"})
	b := state.ApplyCart(s, state.ItemAdded{ProductID: "3"})

	assert.Equal(t, []string{"1"}, s.ProductIDs)
	assert.Equal(t, []string{"1", "2"}, a.ProductIDs)
	assert.Equal(t, []string{"1", "3"}, b.ProductIDs)
}

func TestApplyCart_ItemRemoved_AbsentIsNoop(t *testing.T) {
	order := &model.Order{ID: "o-1"}
	s := state.CartState{ProductIDs: []string{"1", "2"}, Price: 12, LastOrder: order}

	next := state.ApplyCart(s, state.ItemRemoved{ProductID: "9"})

	assert.Equal(t, s, next)
}

func TestApplyCart_ItemRemoved(t *testing.T) {
	order := &model.Order{ID: "o-1"}
	s := state.CartState{ProductIDs: []string{"1", "2", "3"}, Price: 12, LastOrder: order}

	next := state.ApplyCart(s, state.ItemRemoved{ProductID: "2"})

	assert.Equal(t, []string{"1", "3"}, next.ProductIDs)
	//priceは再計算しない
	assert.Equal(t, int64(12), next.Price)
	//lastOrderは消さない
	assert.Same(t, order, next.LastOrder)
	assert.Equal(t, []string{"1", "2", "3"}, s.ProductIDs)
}

// 数値IDは文字列で比較されるので、呼び出し側で文字列化が必要
func TestApplyCart_ItemRemoved_ComparesAsString(t *testing.T) {
	s := state.CartState{ProductIDs: []string{"10"}}

	assert.Equal(t, s, state.ApplyCart(s, state.ItemRemoved{ProductID: "010"}))
	assert.Empty(t, state.ApplyCart(s, state.ItemRemoved{ProductID: "10"}).ProductIDs)
}

func TestApplyCart_LoadSucceeded_SumsWholePayload(t *testing.T) {
	s := state.CartState{ProductIDs: []string{"1"}, Price: 0}

	next := state.ApplyCart(s, state.ProductsLoadSucceeded{Products: []model.Product{{Price: 10}, {Price: 25}}})

	assert.Equal(t, int64(35), next.Price)
	assert.Equal(t, []string{"1"}, next.ProductIDs)
}

func TestApplyCart_LoadSucceeded_EmptyPayload_ZeroPrice(t *testing.T) {
	s := state.CartState{ProductIDs: []string{"1"}, Price: 40}

	next := state.ApplyCart(s, state.ProductsLoadSucceeded{})

	assert.Equal(t, int64(0), next.Price)
}

// 1件ロードではカート金額は変わらない
func TestApplyCart_SingleProductLoad_DoesNotTouchPrice(t *testing.T) {
	s := state.CartState{ProductIDs: []string{"1"}, Price: 40}

	next := state.ApplyCart(s, state.ProductLoadSucceeded{Product: model.Product{ID: 1, Price: 3}})

	assert.Equal(t, int64(40), next.Price)
}

func TestApplyCart_CheckoutSucceeded(t *testing.T) {
	order := model.Order{
		ID:           "99",
		DeliveryInfo: model.DeliveryInfo{Name: "A", Email: "a@example.com", Address: "Bangkok"},
		ProductIDs:   []string{"1", "2"},
		Price:        12,
		Date:         time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	s := state.CartState{ProductIDs: []string{"1", "2"}, Price: 12}

	next := state.ApplyCart(s, state.CheckoutSucceeded{Order: order})

	assert.Equal(t, []string{}, next.ProductIDs)
	assert.Equal(t, int64(0), next.Price)
	if assert.NotNil(t, next.LastOrder) {
		assert.Equal(t, order, *next.LastOrder)
	}
}

func TestApplyCart_CheckoutSucceeded_EmptyCart(t *testing.T) {
	next := state.ApplyCart(state.NewCartState(), state.CheckoutSucceeded{Order: model.Order{ID: "1"}})

	assert.Empty(t, next.ProductIDs)
	assert.Equal(t, int64(0), next.Price)
	assert.Equal(t, "1", next.LastOrder.ID)
}

func TestApplyCart_LastOrder_SurvivesAddRemove(t *testing.T) {
	s := state.ApplyCart(state.NewCartState(), state.CheckoutSucceeded{Order: model.Order{ID: "first"}})
	s = state.ApplyCart(s, state.ItemAdded{ProductID: "1"})
	s = state.ApplyCart(s, state.ItemRemoved{ProductID: "1"})

	assert.Equal(t, "first", s.LastOrder.ID)

	s = state.ApplyCart(s, state.ItemAdded{ProductID: "2"})
	s = state.ApplyCart(s, state.CheckoutSucceeded{Order: model.Order{ID: "second"}})
	assert.Equal(t, "second", s.LastOrder.ID)
}

func TestApplyCart_IgnoresOtherEvents(t *testing.T) {
	s := state.CartState{ProductIDs: []string{"1"}, Price: 5}

	assert.Equal(t, s, state.ApplyCart(s, state.ProductsLoadRequested{}))
	assert.Equal(t, s, state.ApplyCart(s, state.ProductsLoadFailed{}))
	assert.Equal(t, s, state.ApplyCart(s, state.ProductsCleared{}))
	assert.Equal(t, s, state.ApplyCart(s, state.FlashMessageSet{Message: "x"}))
}
