package model

import "time"

// User: серверная модель пользователя.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null;size:64"`
	Password string `gorm:"not null"` // bcrypt-хеш, не сам пароль

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
