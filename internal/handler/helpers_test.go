package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestEcho(t *testing.T) (*echo.Echo, *session.Manager) {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Logger.SetOutput(io.Discard)
	return e, session.NewManager(testSecret, time.Hour, false)
}

func gate(sessions *session.Manager) echo.MiddlewareFunc {
	return middleware.RequireSession(sessions)
}

// ログイン済みのリクエスト
func authedRequest(t *testing.T, sessions *session.Manager, method, target string, body io.Reader) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	token, _, err := sessions.Sign(session.Session{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	return req
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
