package model

import "time"

// ログインするユーザー
// パスワードはbcryptハッシュのみ保存する
type User struct {
	ID           int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username     string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
