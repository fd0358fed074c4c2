package state

// RootState はセッション1つ分の状態（products / cart / ui）
type RootState struct {
	Catalog CatalogState `json:"products"`
	Cart    CartState    `json:"cart"`
	UI      UIState      `json:"ui"`
}

func NewRootState() RootState {
	return RootState{
		Catalog: NewCatalogState(),
		Cart:    NewCartState(),
		UI:      NewUIState(),
	}
}

// Reduce は1つのイベントを全ストアに適用する。
// ProductsLoadSucceeded は商品ストアとカートストアの両方が受け取る。
func Reduce(s RootState, e Event) RootState {
	return RootState{
		Catalog: ApplyCatalog(s.Catalog, e),
		Cart:    ApplyCart(s.Cart, e),
		UI:      ApplyUI(s.UI, e),
	}
}
