package usecase

import (
	"context"
	"net/http"

	"storefront/internal/state"

	"go.uber.org/zap"
)

// 商品カタログの読み込み。
// Requested → 取得 → Succeeded/Failed の順にdispatchする。
type CatalogUsecase struct {
	provider ProductProvider
	logger   *zap.Logger
}

// DI
func NewCatalogUsecase(provider ProductProvider, logger *zap.Logger) *CatalogUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogUsecase{provider: provider, logger: logger}
}

// 一覧を読み込む。取得失敗はエラーにせず、stateに記録する。
func (u *CatalogUsecase) LoadProducts(ctx context.Context, d StateDispatcher, in ListProductsInput) (state.RootState, error) {
	if err := in.Validate(); err != nil {
		return d.State(), err
	}

	d.Dispatch(state.ProductsLoadRequested{})

	out, err := u.provider.ListPublicProducts(ctx, in)
	if err != nil {
		u.logger.Warn("load products failed", zap.Error(err))
		return d.Dispatch(state.ProductsLoadFailed{Reason: failureReason(err)}), nil
	}
	return d.Dispatch(state.ProductsLoadSucceeded{Products: out.Items}), nil
}

// 1件を読み込む
func (u *CatalogUsecase) LoadProduct(ctx context.Context, d StateDispatcher, productID int64) (state.RootState, error) {
	if productID <= 0 {
		return d.State(), NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	d.Dispatch(state.ProductLoadRequested{ID: productID})

	p, err := u.provider.GetProductDetail(ctx, productID)
	if err != nil {
		u.logger.Warn("load product failed", zap.Int64("product_id", productID), zap.Error(err))
		return d.Dispatch(state.ProductLoadFailed{ID: productID, Reason: failureReason(err)}), nil
	}
	return d.Dispatch(state.ProductLoadSucceeded{Product: p}), nil
}

func (u *CatalogUsecase) ClearProducts(d StateDispatcher) state.RootState {
	return d.Dispatch(state.ProductsCleared{})
}

// stateに残す失敗理由。HTTPErrorならメッセージだけ。
func failureReason(err error) string {
	if he, ok := AsHTTPError(err); ok {
		return he.Message
	}
	return err.Error()
}
