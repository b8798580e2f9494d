package middleware

import (
	"net/http"
	"net/url"

	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	CtxSessionKey = "session" // session.Session
)

// 未ログイン時の案内
const MsgLoginRequired = "You must log in to view this page."

// ログイン必須ページ用。
// セッションが無ければトップへリダイレクトしてメッセージを出す
func RequireSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := sessions.Load(c.Request())
			if err != nil {
				return c.Redirect(http.StatusFound, "/?error="+url.QueryEscape(MsgLoginRequired))
			}

			//contextへ保存
			c.Set(CtxSessionKey, s)
			return next(c)
		}
	}
}

// contextからセッションを取り出す
func SessionFrom(c echo.Context) (session.Session, bool) {
	s, ok := c.Get(CtxSessionKey).(session.Session)
	if !ok || s.UserID <= 0 {
		return session.Session{}, false
	}
	return s, true
}
