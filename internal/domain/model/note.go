package model

import "time"

type Note struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"size:50;not null;index"`
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt *time.Time `gorm:"index"`
}

// Activeは期限が未設定、またはまだ先かどうか。
// 期限切れ判定はリクエストごとに行う（バックグラウンド削除はしない）。
func (n *Note) Active(now time.Time) bool {
	return n.ExpiresAt == nil || n.ExpiresAt.After(now)
}
