package model

import "time"

type User struct {
	Username     string `gorm:"primaryKey;size:50"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
