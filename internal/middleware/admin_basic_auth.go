package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

const CtxAdminUserKey = "admin_user" // string

// 管理者のBasic認証。パスワードはbcryptハッシュと照合する。
// ハッシュが未設定なら常に拒否。
func AdminBasicAuth(user, passwordHash string) echo.MiddlewareFunc {
	return echomw.BasicAuth(func(u, p string, c echo.Context) (bool, error) {
		if user == "" || passwordHash == "" {
			return false, nil
		}
		if subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 {
			return false, nil
		}
		if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(p)) != nil {
			return false, nil
		}

		c.Set(CtxAdminUserKey, u)
		return true, nil
	})
}
