package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pushka/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already registered")
)

type DomainStore struct{ db *gorm.DB }

func NewDomainStore(db *gorm.DB) *DomainStore { return &DomainStore{db: db} }

// Create пишет домен одной атомарной вставкой. Нарушение любого из
// unique-индексов (owner_id+domain_name либо domain_key) — ErrConflict;
// какой именно — для вызывающего неважно, оба трактуются одинаково.
func (s *DomainStore) Create(ctx context.Context, d *models.Domain) error {
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// ListByOwner — все домены владельца, свежие сверху.
func (s *DomainStore) ListByOwner(ctx context.Context, ownerID uint) ([]models.Domain, error) {
	var out []models.Domain
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&out).Error
	return out, err
}

func (s *DomainStore) GetByKey(ctx context.Context, domainKey string) (*models.Domain, error) {
	var d models.Domain
	err := s.db.WithContext(ctx).Where("domain_key = ?", domainKey).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteByID удаляет строго пару (id, owner). Чужой домен — ErrNotFound,
// никогда не успех.
func (s *DomainStore) DeleteByID(ctx context.Context, id, ownerID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Domain{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DomainStore) DeleteByKey(ctx context.Context, domainKey string, ownerID uint) error {
	res := s.db.WithContext(ctx).
		Where("domain_key = ? AND owner_id = ?", domainKey, ownerID).
		Delete(&models.Domain{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
