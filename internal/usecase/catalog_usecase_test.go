package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// dispatchされたイベント名を記録する
func recordEvents(d *state.Dispatcher) *[]string {
	names := &[]string{}
	d.Subscribe(func(prev, next state.RootState, e state.Event) {
		*names = append(*names, e.Name())
	})
	return names
}

func TestCatalogUsecase_LoadProducts_Success(t *testing.T) {
	provider := new(ProviderMock)
	uc := usecase.NewCatalogUsecase(provider, nil)
	d := state.NewDispatcher(state.NewRootState(), nil)
	events := recordEvents(d)

	in := usecase.ListProductsInput{Page: 1, Limit: 20}
	items := []model.Product{{ID: 1, Price: 5}, {ID: 2, Price: 7}}

	provider.On("ListPublicProducts", mock.Anything, in).Run(func(args mock.Arguments) {
		// 取得中はローディング
		assert.True(t, d.State().Catalog.IsLoading)
	}).Return(usecase.ProductListOutput{Items: items, Total: 2, Page: 1, Limit: 20}, nil)

	s, err := uc.LoadProducts(context.Background(), d, in)
	assert.NoError(t, err)
	assert.False(t, s.Catalog.IsLoading)
	assert.Equal(t, items, s.Catalog.Items)
	assert.Equal(t, int64(12), s.Cart.Price)
	assert.Equal(t, []string{"products/load_requested", "products/load_succeeded"}, *events)

	provider.AssertExpectations(t)
}

func TestCatalogUsecase_LoadProducts_FailureKeepsItems(t *testing.T) {
	provider := new(ProviderMock)
	uc := usecase.NewCatalogUsecase(provider, nil)

	prev := []model.Product{{ID: 1, Price: 5}}
	d := state.NewDispatcher(state.NewRootState(), nil)
	d.Dispatch(state.ProductsLoadSucceeded{Products: prev})
	events := recordEvents(d)

	provider.On("ListPublicProducts", mock.Anything, mock.Anything).
		Return(nil, usecase.NewHTTPError(http.StatusInternalServerError, "db error"))

	s, err := uc.LoadProducts(context.Background(), d, usecase.ListProductsInput{Page: 1, Limit: 20})
	assert.NoError(t, err)
	assert.False(t, s.Catalog.IsLoading)
	assert.Equal(t, prev, s.Catalog.Items)
	assert.Equal(t, []string{"products/load_requested", "products/load_failed"}, *events)
}

func TestCatalogUsecase_LoadProducts_InvalidInput_NoDispatch(t *testing.T) {
	provider := new(ProviderMock)
	uc := usecase.NewCatalogUsecase(provider, nil)
	d := state.NewDispatcher(state.NewRootState(), nil)

	_, err := uc.LoadProducts(context.Background(), d, usecase.ListProductsInput{Page: 0, Limit: 20})
	assertStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, uint64(0), d.Version())
	provider.AssertNotCalled(t, "ListPublicProducts", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_LoadProduct(t *testing.T) {
	provider := new(ProviderMock)
	uc := usecase.NewCatalogUsecase(provider, nil)
	d := state.NewDispatcher(state.NewRootState(), nil)
	d.Dispatch(state.ProductsLoadSucceeded{Products: []model.Product{{ID: 1, Price: 5}, {ID: 2, Price: 7}}})

	provider.On("GetProductDetail", mock.Anything, int64(2)).Return(model.Product{ID: 2, Price: 7, IsActive: true}, nil)
	provider.On("GetProductDetail", mock.Anything, int64(3)).Return(nil, errors.New("boom"))

	s, err := uc.LoadProduct(context.Background(), d, 2)
	assert.NoError(t, err)
	assert.Len(t, s.Catalog.Items, 1)
	assert.Equal(t, int64(2), s.Catalog.Items[0].ID)
	// 1件読み込みではカートの合計は変わらない
	assert.Equal(t, int64(12), s.Cart.Price)

	s, err = uc.LoadProduct(context.Background(), d, 3)
	assert.NoError(t, err)
	assert.False(t, s.Catalog.IsLoading)
	assert.Len(t, s.Catalog.Items, 1)

	_, err = uc.LoadProduct(context.Background(), d, 0)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestCatalogUsecase_ClearProducts(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(ProviderMock), nil)
	d := state.NewDispatcher(state.NewRootState(), nil)
	d.Dispatch(state.ProductsLoadSucceeded{Products: []model.Product{{ID: 1}}})

	s := uc.ClearProducts(d)
	assert.Empty(t, s.Catalog.Items)
	assert.False(t, s.Catalog.IsLoading)
}
