package models

import "time"

// Subscription — подписка одного браузера на push для одного домена.
// DomainKey — слабая ссылка на Domain (без FK): ключ мог быть удалён,
// подписка при этом остаётся. Endpoint — естественный ключ дедупликации.
type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uint   `gorm:"index" json:"user_id"`
	DomainKey string `gorm:"index;size:16;not null" json:"domain_key"`

	Endpoint string `gorm:"uniqueIndex;size:500;not null" json:"endpoint"`
	P256dh   string `gorm:"size:255" json:"p256dh"`
	Auth     string `gorm:"size:255" json:"auth"`
}
