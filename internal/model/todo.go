package model

import "time"

// Todo: запись пользователя. UserID хранится как значение, без внешнего ключа:
// todo-сервис ничего не знает о таблице users.
type Todo struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Text   string `gorm:"not null"`
	UserID int64  `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
