package state

import (
	"slices"

	"storefront/internal/domain/model"
)

type CartState struct {
	ProductIDs []string     `json:"product_ids"`
	Price      int64        `json:"price"`
	LastOrder  *model.Order `json:"last_order"`
}

func NewCartState() CartState {
	return CartState{ProductIDs: []string{}}
}

func (s CartState) Contains(productID string) bool {
	return slices.Contains(s.ProductIDs, productID)
}

func (s CartState) Len() int {
	return len(s.ProductIDs)
}

// ApplyCart はカートストアの遷移関数。
// priceは追加/削除では再計算しない。商品ロード成功時だけ計算し直す。
func ApplyCart(s CartState, e Event) CartState {
	switch ev := e.(type) {
	case ItemAdded:
		if s.Contains(ev.ProductID) {
			return s
		}
		ids := make([]string, 0, len(s.ProductIDs)+1)
		ids = append(ids, s.ProductIDs...)
		s.ProductIDs = append(ids, ev.ProductID)
		return s

	case ItemRemoved:
		if !s.Contains(ev.ProductID) {
			return s
		}
		ids := make([]string, 0, len(s.ProductIDs))
		for _, id := range s.ProductIDs {
			if id != ev.ProductID {
				ids = append(ids, id)
			}
		}
		s.ProductIDs = ids
		return s

	case ProductsLoadSucceeded:
		// TODO: productIdsに含まれる商品だけを合計するか決める。今はロードされた全件の合計。
		s.Price = sumPrices(ev.Products)
		return s

	case CheckoutSucceeded:
		order := ev.Order
		order.ProductIDs = slices.Clone(ev.Order.ProductIDs)
		return CartState{
			ProductIDs: []string{},
			Price:      0,
			LastOrder:  &order,
		}

	default:
		return s
	}
}

func sumPrices(ps []model.Product) int64 {
	var total int64 = 0
	for _, p := range ps {
		total += p.Price
	}
	return total
}
