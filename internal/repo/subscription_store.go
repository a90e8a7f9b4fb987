package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pushka/internal/models"
)

type SubscriptionStore struct{ db *gorm.DB }

func NewSubscriptionStore(db *gorm.DB) *SubscriptionStore { return &SubscriptionStore{db: db} }

// InsertIgnoreDuplicate — идемпотентная вставка подписки. Конфликт гасится
// только по endpoint (ON CONFLICT (endpoint) DO NOTHING): браузер шлёт одну
// и ту же подписку на каждую загрузку страницы, это подтверждение, не ошибка.
// Любое другое нарушение уходит наверх как есть.
func (s *SubscriptionStore) InsertIgnoreDuplicate(ctx context.Context, sub *models.Subscription) (created bool, err error) {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoNothing: true,
		}).
		Create(sub)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
