package models

import "time"

// Статусы домена. Переход pending→verified делает внешний процесс
// (проверка владения по verification_token), здесь он не реализован.
const (
	DomainStatusPending  = "pending"
	DomainStatusVerified = "verified"
)

// Domain — зарегистрированный сайт одного владельца.
// Жёсткое удаление: колонки DeletedAt нет намеренно.
type Domain struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerID    uint   `gorm:"not null;uniqueIndex:uniq_owner_domain,priority:1" json:"owner_id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	DomainName string `gorm:"size:255;not null;uniqueIndex:uniq_owner_domain,priority:2" json:"domain_name"`
	Timezone   string `gorm:"size:64" json:"timezone"`

	// Публичный идентификатор домена для SDK и lookup'ов конфигурации.
	DomainKey string `gorm:"uniqueIndex;size:16;not null" json:"domain_key"`
	Status    string `gorm:"size:32;not null" json:"status"`

	VerificationToken string `gorm:"size:64;not null" json:"verification_token"`

	VAPIDPublicKey string `gorm:"size:255;not null" json:"vapid_public_key"`
	// Приватный ключ не покидает сервер ни в одном ответе.
	VAPIDPrivateKey string `gorm:"size:255;not null" json:"-"`
}
