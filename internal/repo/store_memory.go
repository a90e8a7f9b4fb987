package repo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"pushka/internal/models"
)

/* ───── in-memory сторы (режим без БД) ───── */

type MemDomainStore struct {
	mu          sync.RWMutex
	seq         uint
	byID        map[uint]models.Domain
	byKey       map[string]uint
	byOwnerName map[string]uint // "<owner>\n<domain_name>" -> id
}

func NewMemDomainStore() *MemDomainStore {
	return &MemDomainStore{
		byID:        map[uint]models.Domain{},
		byKey:       map[string]uint{},
		byOwnerName: map[string]uint{},
	}
}

func ownerNameKey(ownerID uint, domainName string) string {
	return fmt.Sprintf("%d\x00%s", ownerID, strings.ToLower(domainName))
}

func (m *MemDomainStore) Create(_ context.Context, d *models.Domain) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	on := ownerNameKey(d.OwnerID, d.DomainName)
	if _, ok := m.byOwnerName[on]; ok {
		return ErrConflict
	}
	if _, ok := m.byKey[d.DomainKey]; ok {
		return ErrConflict
	}
	m.seq++
	d.ID = m.seq
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	m.byID[d.ID] = *d
	m.byKey[d.DomainKey] = d.ID
	m.byOwnerName[on] = d.ID
	return nil
}

func (m *MemDomainStore) ListByOwner(_ context.Context, ownerID uint) ([]models.Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Domain
	for _, d := range m.byID {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MemDomainStore) GetByKey(_ context.Context, domainKey string) (*models.Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byKey[domainKey]
	if !ok {
		return nil, ErrNotFound
	}
	d := m.byID[id]
	return &d, nil
}

func (m *MemDomainStore) DeleteByID(_ context.Context, id, ownerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.byID[id]
	if !ok || d.OwnerID != ownerID {
		return ErrNotFound
	}
	m.remove(d)
	return nil
}

func (m *MemDomainStore) DeleteByKey(_ context.Context, domainKey string, ownerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byKey[domainKey]
	if !ok {
		return ErrNotFound
	}
	d := m.byID[id]
	if d.OwnerID != ownerID {
		return ErrNotFound
	}
	m.remove(d)
	return nil
}

func (m *MemDomainStore) remove(d models.Domain) {
	delete(m.byID, d.ID)
	delete(m.byKey, d.DomainKey)
	delete(m.byOwnerName, ownerNameKey(d.OwnerID, d.DomainName))
}

type MemSubscriptionStore struct {
	mu         sync.Mutex
	seq        uint
	byEndpoint map[string]models.Subscription
}

func NewMemSubscriptionStore() *MemSubscriptionStore {
	return &MemSubscriptionStore{byEndpoint: map[string]models.Subscription{}}
}

// Зеркало clause.OnConflict по endpoint: повтор — не ошибка, строка одна.
func (m *MemSubscriptionStore) InsertIgnoreDuplicate(_ context.Context, sub *models.Subscription) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEndpoint[sub.Endpoint]; ok {
		return false, nil
	}
	m.seq++
	sub.ID = m.seq
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	m.byEndpoint[sub.Endpoint] = *sub
	return true, nil
}
