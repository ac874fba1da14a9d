package model

import "time"

// User — серверная модель учётной записи. Пароль хранится только как bcrypt-хеш.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	FullName string `gorm:"not null"`
	Email    string `gorm:"not null;uniqueIndex"`
	Password string `gorm:"not null"` // bcrypt hash, никогда не отдаётся наружу

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
