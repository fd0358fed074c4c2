package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/state"

	"go.uber.org/zap"
)

const (
	MsgAddedToCart       = "The product has been added to your cart"
	MsgOrderPlaced       = "Your order has been placed!"
	MsgOrderFailedPrefix = "Failed to place order: "

	// カート再読み込み時のページサイズ
	cartLoadPageSize = maxListLimit
	// ページングの上限（無限ループ防止）
	cartLoadMaxPages = 100
)

// ErrOrderIDはサーバー側の障害として500で返す
var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrOrderID   = errors.New("order id generation failed")
)

type CartUsecase struct {
	provider  ProductProvider
	validator DeliveryValidator
	notifier  Notifier
	idGen     IDGenerator
	clock     Clock
	logger    *zap.Logger
}

// DI
func NewCartUsecase(
	provider ProductProvider,
	validator DeliveryValidator,
	notifier Notifier,
	idGen IDGenerator,
	clock Clock,
	logger *zap.Logger,
) *CartUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUsecase{
		provider:  provider,
		validator: validator,
		notifier:  notifier,
		idGen:     idGen,
		clock:     clock,
		logger:    logger,
	}
}

func (u *CartUsecase) AddToCart(ctx context.Context, d StateDispatcher, productID string) (state.RootState, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return d.State(), NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	u.notifier.Notify(ctx, d, MsgAddedToCart, model.FlashLevelSuccess)
	return d.Dispatch(state.ItemAdded{ProductID: productID}), nil
}

// 削除してからカートの商品を読み込み直す
func (u *CartUsecase) RemoveFromCart(ctx context.Context, d StateDispatcher, productID string) (state.RootState, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return d.State(), NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	d.Dispatch(state.ItemRemoved{ProductID: productID})
	return u.LoadCart(ctx, d)
}

// カート内の商品だけをカタログに読み込む。
// 空のカートならカタログをクリアする。
func (u *CartUsecase) LoadCart(ctx context.Context, d StateDispatcher) (state.RootState, error) {
	ids := d.State().Cart.ProductIDs
	if len(ids) == 0 {
		return d.Dispatch(state.ProductsCleared{}), nil
	}

	products, err := u.collect(ctx, ids)
	if err != nil {
		u.logger.Warn("load cart failed", zap.Int("cart_items", len(ids)), zap.Error(err))
		return d.Dispatch(state.ProductsLoadFailed{Reason: failureReason(err)}), nil
	}
	return d.Dispatch(state.ProductsLoadSucceeded{Products: products}), nil
}

// 公開一覧を全ページ読み、カートに入っている商品だけを返す（一覧の並び順）
func (u *CartUsecase) collect(ctx context.Context, ids []string) ([]model.Product, error) {
	out := make([]model.Product, 0, len(ids))
	for page := 1; page <= cartLoadMaxPages; page++ {
		res, err := u.provider.ListPublicProducts(ctx, ListProductsInput{Page: page, Limit: cartLoadPageSize})
		if err != nil {
			return nil, err
		}
		for _, p := range res.Items {
			if slices.Contains(ids, p.Key()) {
				out = append(out, p)
			}
		}
		if len(res.Items) < cartLoadPageSize || int64(page*cartLoadPageSize) >= res.Total {
			break
		}
	}
	return out, nil
}

type CheckoutOutput struct {
	Order *model.Order    `json:"order"`
	State state.RootState `json:"state"`
}

// 注文を組み立て、成功したらカートを空にする。
// 組み立てと適用は同じロックの中で行う。
// 失敗時はカートに触らず、エラーレベルで通知する。
func (u *CartUsecase) Checkout(ctx context.Context, d StateDispatcher, info model.DeliveryInfo) (CheckoutOutput, error) {
	var order model.Order
	next, err := d.DispatchIf(func(s state.RootState) ([]state.Event, error) {
		o, err := u.buildOrder(s.Cart, info)
		if err != nil {
			return nil, err
		}
		order = o
		return []state.Event{
			u.notifier.Event(MsgOrderPlaced, model.FlashLevelSuccess),
			state.CheckoutSucceeded{Order: o},
		}, nil
	})
	if err != nil {
		u.logger.Warn("checkout failed", zap.Error(err))
		u.notifier.Notify(ctx, d, MsgOrderFailedPrefix+err.Error(), model.FlashLevelError)
		if errors.Is(err, ErrOrderID) {
			return CheckoutOutput{State: d.State()}, NewHTTPError(http.StatusInternalServerError, "order id error")
		}
		return CheckoutOutput{State: d.State()}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.ProductIDs)),
		zap.Int64("price", order.Price),
	)
	return CheckoutOutput{Order: next.Cart.LastOrder, State: next}, nil
}

func (u *CartUsecase) buildOrder(cart state.CartState, info model.DeliveryInfo) (model.Order, error) {
	if cart.Len() == 0 {
		return model.Order{}, ErrEmptyCart
	}
	if err := u.validator.ValidateDelivery(info); err != nil {
		return model.Order{}, err
	}

	id, err := u.idGen.NewID()
	if err != nil {
		return model.Order{}, fmt.Errorf("%w: %v", ErrOrderID, err)
	}

	return model.Order{
		ID: id,
		DeliveryInfo: model.DeliveryInfo{
			Name:    strings.TrimSpace(info.Name),
			Email:   strings.TrimSpace(info.Email),
			Address: strings.TrimSpace(info.Address),
		},
		ProductIDs: slices.Clone(cart.ProductIDs),
		Price:      cart.Price,
		Date:       u.clock.Now(),
	}, nil
}
