package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DarkModeRequest struct {
	Enabled bool `json:"enabled"`
}

// /ui
type UIHandler struct {
	uc *usecase.UIUsecase
}

// DI
func NewUIHandler(uc *usecase.UIUsecase) *UIHandler {
	return &UIHandler{uc: uc}
}

func (h *UIHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/ui")
	g.Use(auth)

	g.POST("/dark-mode/toggle", h.toggleDarkMode)
	g.PUT("/dark-mode", h.setDarkMode)
	g.DELETE("/flash", h.clearFlash)
}

func (h *UIHandler) toggleDarkMode(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.ToggleDarkMode(d))
}

func (h *UIHandler) setDarkMode(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	var req DarkModeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	return c.JSON(http.StatusOK, h.uc.SetDarkMode(d, req.Enabled))
}

func (h *UIHandler) clearFlash(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.ClearFlashMessage(d))
}
