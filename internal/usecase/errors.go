package usecase

import (
	"errors"
	"fmt"
)

var (
	//DBに繋がらない・読み取りに失敗した
	ErrStorageUnavailable = errors.New("storage unavailable")
	//カートが空（エラー画面ではなくカートへ戻す）
	ErrCartEmpty = errors.New("cart empty")
	//注文処理の途中で失敗した（全てrollback済み）
	ErrCheckoutFailed = errors.New("checkout failed")
	//STRICT_STOCK時の在庫不足
	ErrOutOfStock = errors.New("out of stock")
)

// 画面に出すメッセージ
const (
	MsgStorageUnavailable = "Database connection failed. Please try again."
	MsgCheckoutFailed     = "Order processing failed. All changes rolled back."
	MsgOrderPlaced        = "Your order has been placed successfully"
)

type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// 原因を持ったHTTPError。原因はログ用で画面には出さない
func WrapHTTPError(status int, message string, err error) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
