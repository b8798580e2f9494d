package handler

import (
	"net/http"
	"net/url"

	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

// usecaseのエラーをエラーページにする。原因はログだけに出す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	logCause(c, err)

	page := view.ErrorPage{Status: http.StatusInternalServerError, Message: "internal error"}
	if s, ok := middleware.SessionFrom(c); ok {
		page.Username = s.Username
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		page.Status = he.Status
		page.Message = he.Message
	}
	return c.Render(page.Status, "error.html", page)
}

func logCause(c echo.Context, err error) {
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Err == nil {
			return
		}
		err = he.Err
	}
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
}

func currentSession(c echo.Context) (session.Session, bool) {
	return middleware.SessionFrom(c)
}

// ゲートを通っていない時のフォールバック
func redirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/?error="+url.QueryEscape(middleware.MsgLoginRequired))
}

// ヘッダ用。件数取得の失敗はログに出して"?"表示
func chrome(c echo.Context, s session.Session, carts CartService) view.Chrome {
	count := carts.Count(c.Request().Context(), s.UserID)
	if count.Err != nil {
		c.Logger().Warnf("cart count for user %d: %v", s.UserID, count.Err)
	}
	return view.Chrome{Username: s.Username, Cart: count}
}
