package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /catalog セッションの商品カタログ
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/catalog")
	g.Use(auth)

	g.POST("/load", h.load)
	g.POST("/load/:id", h.loadOne)
	g.DELETE("", h.clear)
}

func (h *CatalogHandler) load(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	in, err := parseListQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.LoadProducts(c.Request().Context(), d, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CatalogHandler) loadOne(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.LoadProduct(c.Request().Context(), d, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CatalogHandler) clear(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.ClearProducts(d))
}
