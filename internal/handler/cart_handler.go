package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// 数値でも文字列でも受け付ける
type AddCartRequest struct {
	ProductID productID `json:"product_id"`
}

type CheckoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/cart")
	g.Use(auth)

	g.POST("/items", h.addItem)
	g.DELETE("/items/:id", h.removeItem)
	g.POST("/load", h.load)
	g.POST("/checkout", h.checkout)
}

func (h *CartHandler) addItem(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.AddToCart(c.Request().Context(), d, string(req.ProductID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.RemoveFromCart(c.Request().Context(), d, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CartHandler) load(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.LoadCart(c.Request().Context(), d)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CartHandler) checkout(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), d, model.DeliveryInfo{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
