package handler

import (
	"errors"
	"net/http"
	"net/url"

	"storefront/internal/session"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
	"storefront/internal/validator"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

// 画面に出すメッセージ
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgUsernameTaken      = "Username already taken. Please choose another."
	MsgSignupUnavailable  = "Database connection failed. Cannot sign up at this time."
	MsgSignupSucceeded    = "Account created successfully! Please log in."
	MsgLoggedOut          = "You have been successfully logged out."
)

type AuthHandler struct {
	registerUC RegisterService // 会員登録usecase
	loginUC    LoginService    // ログインusecase
	sessions   *session.Manager
}

// DIコンストラクタ
func NewAuthHandler(registerUC RegisterService, loginUC LoginService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		sessions:   sessions,
	}
}

// ログイン・会員登録は誰でもアクセスできる
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
	e.POST("/login", h.login)
	e.GET("/signup_page", h.signupPage)
	e.POST("/signup_action", h.signup)
	e.GET("/logout", h.logout)
}

// トップ（ログインフォーム）。?error= と ?signup_success= を表示する
func (h *AuthHandler) index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", view.IndexPage{Chrome: view.Chrome{
		Error:  c.QueryParam("error"),
		Notice: c.QueryParam("signup_success"),
	}})
}

func (h *AuthHandler) login(c echo.Context) error {
	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	})
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return c.Render(http.StatusUnauthorized, "index.html", view.IndexPage{Chrome: view.Chrome{Error: MsgInvalidCredentials}})
	}
	if err != nil {
		logCause(c, err)
		return c.Render(http.StatusServiceUnavailable, "index.html", view.IndexPage{Chrome: view.Chrome{Error: usecase.MsgStorageUnavailable}})
	}

	if err := h.sessions.Issue(c.Response(), session.Session{
		UserID:   out.User.ID,
		Username: out.User.Username,
	}); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusFound, "/products")
}

func (h *AuthHandler) signupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", view.SignupPage{})
}

func (h *AuthHandler) signup(c echo.Context) error {
	_, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	})

	var fe *validator.FieldError
	switch {
	case err == nil:
		return c.Render(http.StatusOK, "index.html", view.IndexPage{Chrome: view.Chrome{Notice: MsgSignupSucceeded}})
	case errors.As(err, &fe):
		return c.Render(http.StatusBadRequest, "signup.html", view.SignupPage{Chrome: view.Chrome{Error: fe.Message}})
	case errors.Is(err, auth.ErrUsernameTaken):
		return c.Render(http.StatusConflict, "index.html", view.IndexPage{Chrome: view.Chrome{Error: MsgUsernameTaken}})
	default:
		logCause(c, err)
		return c.Render(http.StatusServiceUnavailable, "index.html", view.IndexPage{Chrome: view.Chrome{Error: MsgSignupUnavailable}})
	}
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.sessions.Clear(c.Response())
	return c.Redirect(http.StatusFound, "/?signup_success="+url.QueryEscape(MsgLoggedOut))
}
