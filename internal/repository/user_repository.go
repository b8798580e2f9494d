package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// ユーザー名の一意制約違反
var ErrUserExists = errors.New("user already exists")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	//ユーザー名から1件取得する。無ければErrUserNotFound
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
