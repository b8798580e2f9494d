package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// セッションCookie名
const CookieName = "storefront_session"

// Cookieが無い・署名不正・期限切れ
var ErrNoSession = errors.New("no session")

// ログイン中のユーザー
type Session struct {
	UserID   int64
	Username string
}

type claims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

// Manager はセッションをHS256のJWTにしてHttpOnly Cookieで持たせる。
// サーバ側には何も保存しない
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Sign はセッションをトークンにする
func (m *Manager) Sign(s Session) (string, time.Time, error) {
	if s.UserID <= 0 || s.Username == "" {
		return "", time.Time{}, fmt.Errorf("invalid session")
	}

	now := m.now()
	exp := now.Add(m.ttl)
	c := claims{
		Username: s.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(s.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Parse はトークンを検証してセッションに戻す
func (m *Manager) Parse(raw string) (Session, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Session{}, ErrNoSession
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 || c.Username == "" {
		return Session{}, ErrNoSession
	}
	return Session{UserID: userID, Username: c.Username}, nil
}

// Issue はログイン成功時にCookieをセットする
func (m *Manager) Issue(w http.ResponseWriter, s Session) error {
	token, exp, err := m.Sign(s)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load はリクエストのCookieからセッションを取り出す
func (m *Manager) Load(r *http.Request) (Session, error) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return Session{}, ErrNoSession
	}
	return m.Parse(ck.Value)
}

// Clear はログアウト時にCookieを消す
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
