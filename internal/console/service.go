package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pushka/internal/keygen"
	"pushka/internal/metrics"
	"pushka/internal/models"
	"pushka/internal/repo"
)

// ErrInvalidInput — пустое/отсутствующее обязательное поле (HTTP 400).
var ErrInvalidInput = errors.New("invalid input")

/* ───── контракты сторов ───── */

type DomainStore interface {
	Create(ctx context.Context, d *models.Domain) error
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Domain, error)
	GetByKey(ctx context.Context, domainKey string) (*models.Domain, error)
	DeleteByID(ctx context.Context, id, ownerID uint) error
	DeleteByKey(ctx context.Context, domainKey string, ownerID uint) error
}

type SubscriptionStore interface {
	InsertIgnoreDuplicate(ctx context.Context, sub *models.Subscription) (created bool, err error)
}

/* ───── сервис ───── */

// Service — provisioning доменов + приём подписок. Состояния в процессе нет:
// весь стейт в сторах, сериализация конфликтов — на unique-индексах.
type Service struct {
	domains DomainStore
	subs    SubscriptionStore
	m       *metrics.Metrics
}

func NewService(domains DomainStore, subs SubscriptionStore, m *metrics.Metrics) *Service {
	return &Service{domains: domains, subs: subs, m: m}
}

type CreateDomainInput struct {
	OwnerID    uint
	Name       string
	DomainName string
	Timezone   string
}

// CreateDomain валидирует запрос, выпускает идентичность (domain key,
// verification token, VAPID-пара) и пишет запись со статусом pending.
// Вставка атомарна: либо полная запись, либо ничего. Коллизию domain key
// не перегенерируем — отдаём conflict, как исходная консоль.
func (s *Service) CreateDomain(ctx context.Context, in CreateDomainInput) (*models.Domain, error) {
	name := strings.TrimSpace(in.Name)
	domainName := strings.ToLower(strings.TrimSpace(in.DomainName))
	switch {
	case in.OwnerID == 0:
		return nil, fmt.Errorf("%w: ownerId is required", ErrInvalidInput)
	case name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case domainName == "":
		return nil, fmt.Errorf("%w: domain is required", ErrInvalidInput)
	}

	key, err := keygen.DomainKey()
	if err != nil {
		return nil, err
	}
	token, err := keygen.VerificationToken()
	if err != nil {
		return nil, err
	}
	pair, err := keygen.VAPIDKeys()
	if err != nil {
		return nil, err
	}

	d := &models.Domain{
		OwnerID:           in.OwnerID,
		Name:              name,
		DomainName:        domainName,
		Timezone:          strings.TrimSpace(in.Timezone),
		DomainKey:         key,
		Status:            models.DomainStatusPending,
		VerificationToken: token,
		VAPIDPublicKey:    pair.Public,
		VAPIDPrivateKey:   pair.Private,
	}
	if err := s.domains.Create(ctx, d); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			s.m.DomainConflicts.Inc()
		}
		return nil, err
	}
	s.m.DomainsCreated.Inc()
	return d, nil
}

func (s *Service) ListDomains(ctx context.Context, ownerID uint) ([]models.Domain, error) {
	return s.domains.ListByOwner(ctx, ownerID)
}

func (s *Service) GetDomain(ctx context.Context, domainKey string) (*models.Domain, error) {
	return s.domains.GetByKey(ctx, domainKey)
}

func (s *Service) DeleteDomain(ctx context.Context, id, ownerID uint) error {
	return s.domains.DeleteByID(ctx, id, ownerID)
}

func (s *Service) DeleteDomainByKey(ctx context.Context, domainKey string, ownerID uint) error {
	return s.domains.DeleteByKey(ctx, domainKey, ownerID)
}

type SubscriptionInput struct {
	UserID    uint
	DomainKey string
	Endpoint  string
	P256dh    string
	Auth      string
}

// SubmitSubscription сохраняет подписку браузера. Повтор того же endpoint —
// успех без новой строки. domain_key на существование НЕ проверяем:
// так вела себя исходная консоль (осиротевшие подписки возможны).
func (s *Service) SubmitSubscription(ctx context.Context, in SubscriptionInput) error {
	switch {
	case strings.TrimSpace(in.DomainKey) == "":
		return fmt.Errorf("%w: domain_key is required", ErrInvalidInput)
	case strings.TrimSpace(in.Endpoint) == "":
		return fmt.Errorf("%w: subscription.endpoint is required", ErrInvalidInput)
	}

	created, err := s.subs.InsertIgnoreDuplicate(ctx, &models.Subscription{
		UserID:    in.UserID,
		DomainKey: in.DomainKey,
		Endpoint:  in.Endpoint,
		P256dh:    in.P256dh,
		Auth:      in.Auth,
	})
	if err != nil {
		return err
	}
	if created {
		s.m.SubscriptionsAccepted.Inc()
	} else {
		s.m.SubscriptionsDuplicate.Inc()
	}
	return nil
}
