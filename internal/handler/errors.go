package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// SessionJWTを通っていなければ401
func dispatcherFromContext(c echo.Context) (usecase.StateDispatcher, error) {
	d, ok := middleware.DispatcherFrom(c)
	if !ok {
		return nil, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return d, nil
}
