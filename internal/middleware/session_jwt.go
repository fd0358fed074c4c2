package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxSessionIDKey  = "session_id" // string
	CtxDispatcherKey = "dispatcher" // usecase.StateDispatcher
)

// セッショントークンの検証
type SessionTokenParser interface {
	Parse(raw string) (string, error)
}

// セッションIDから状態を取り出す
type SessionResumer interface {
	Resume(sessionID string) usecase.StateDispatcher
}

// bearerAuth用のセッショントークン検証ミドルウェア。
func SessionJWT(parser SessionTokenParser, sessions SessionResumer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			sessionID, err := parser.Parse(rawToken)
			if err != nil || sessionID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxSessionIDKey, sessionID)
			c.Set(CtxDispatcherKey, sessions.Resume(sessionID))

			return next(c)
		}
	}
}

// SessionJWTが入れたDispatcherを取り出す
func DispatcherFrom(c echo.Context) (usecase.StateDispatcher, bool) {
	d, ok := c.Get(CtxDispatcherKey).(usecase.StateDispatcher)
	return d, ok && d != nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
