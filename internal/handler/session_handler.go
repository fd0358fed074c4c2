package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 適用済みイベント数。クライアントは変化の有無の判定に使える
const HeaderStateVersion = "X-State-Version"

// /session と /state
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/session", h.start)
	e.GET("/state", h.state, auth)
}

func (h *SessionHandler) start(c echo.Context) error {
	out, err := h.uc.Start(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SessionHandler) state(c echo.Context) error {
	d, err := dispatcherFromContext(c)
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(HeaderStateVersion, strconv.FormatUint(d.Version(), 10))
	return c.JSON(http.StatusOK, d.State())
}
