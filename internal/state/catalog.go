package state

import (
	"slices"

	"storefront/internal/domain/model"
)

type CatalogState struct {
	Items     []model.Product `json:"items"`
	IsLoading bool            `json:"is_loading"`
}

func NewCatalogState() CatalogState {
	return CatalogState{Items: []model.Product{}}
}

// ApplyCatalog は商品ストアの遷移関数。失敗しない。
// 重複リクエストは排除せず、後から届いた結果が勝つ。
func ApplyCatalog(s CatalogState, e Event) CatalogState {
	switch ev := e.(type) {
	case ProductsLoadRequested, ProductLoadRequested:
		s.IsLoading = true
		return s

	case ProductsLoadSucceeded:
		//マージせず丸ごと置き換える
		return CatalogState{Items: cloneProducts(ev.Products), IsLoading: false}

	case ProductLoadSucceeded:
		return CatalogState{Items: []model.Product{ev.Product}, IsLoading: false}

	case ProductsLoadFailed, ProductLoadFailed:
		//失敗しても既存のitemsは残す
		s.IsLoading = false
		return s

	case ProductsCleared:
		return NewCatalogState()

	default:
		return s
	}
}

func cloneProducts(ps []model.Product) []model.Product {
	if ps == nil {
		return []model.Product{}
	}
	return slices.Clone(ps)
}
