package validator

import (
	"errors"
	"net/mail"
	"unicode/utf8"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

// どの項目がなぜ不正か。画面にはMessageを出す
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// errors.Is(err, ErrInvalidInput)で判定できる
func (e *FieldError) Is(target error) bool { return target == ErrInvalidInput }

type SignupValidator struct{}

func NewSignupValidator() *SignupValidator {
	return &SignupValidator{}
}

// サインアップの入力を検証
func (v *SignupValidator) ValidateSignup(username string, email string, password string) error {
	// ユーザー名 3〜50文字
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return &FieldError{Field: "username", Message: "Username must be between 3 and 50 characters."}
	}

	// email形式
	if !isEmailLike(email) {
		return &FieldError{Field: "email", Message: "Please enter a valid email address."}
	}

	// パスワード最低文字数（8）
	if len(password) < 8 {
		return &FieldError{Field: "password", Message: "Password must be at least 8 characters."}
	}

	return nil
}

// 表示名付き（"Name <a@b>"）は不可
func isEmailLike(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
