package server

import (
	"net/http"

	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Session      *handler.SessionHandler
	Catalog      *handler.CatalogHandler
	Cart         *handler.CartHandler
	UI           *handler.UIHandler
}

type healthResponse struct {
	Status string `json:"status"`
}

// sessionAuth: セッショントークン、adminAuth: 管理者Basic認証
func RegisterRoutes(e *echo.Echo, h Handlers, sessionAuth, adminAuth echo.MiddlewareFunc) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
	})

	h.Product.RegisterRoutes(e)
	h.Session.RegisterRoutes(e, sessionAuth)
	h.Catalog.RegisterRoutes(e, sessionAuth)
	h.Cart.RegisterRoutes(e, sessionAuth)
	h.UI.RegisterRoutes(e, sessionAuth)
	h.AdminProduct.RegisterRoutes(e, adminAuth)
}
