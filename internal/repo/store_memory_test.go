package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pushka/internal/models"
)

type MemStoreSuite struct {
	suite.Suite
	domains *MemDomainStore
	subs    *MemSubscriptionStore
	ctx     context.Context
}

func TestMemStoreSuite(t *testing.T) {
	suite.Run(t, new(MemStoreSuite))
}

func (s *MemStoreSuite) SetupTest() {
	s.domains = NewMemDomainStore()
	s.subs = NewMemSubscriptionStore()
	s.ctx = context.Background()
}

func (s *MemStoreSuite) newDomain(ownerID uint, domainName, domainKey string) *models.Domain {
	return &models.Domain{
		OwnerID:           ownerID,
		Name:              "Site " + domainName,
		DomainName:        domainName,
		DomainKey:         domainKey,
		Status:            models.DomainStatusPending,
		VerificationToken: "tok-" + domainKey,
		VAPIDPublicKey:    "pub",
		VAPIDPrivateKey:   "priv",
	}
}

func (s *MemStoreSuite) TestCreateAndGetByKey() {
	d := s.newDomain(1, "example.com", "abc123XY")
	s.Require().NoError(s.domains.Create(s.ctx, d))
	s.NotZero(d.ID)
	s.False(d.CreatedAt.IsZero())

	got, err := s.domains.GetByKey(s.ctx, "abc123XY")
	s.Require().NoError(err)
	s.Equal("example.com", got.DomainName)
	s.Equal(models.DomainStatusPending, got.Status)

	_, err = s.domains.GetByKey(s.ctx, "missing1")
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *MemStoreSuite) TestUniqueOwnerDomainName() {
	s.Require().NoError(s.domains.Create(s.ctx, s.newDomain(1, "example.com", "key00001")))

	err := s.domains.Create(s.ctx, s.newDomain(1, "example.com", "key00002"))
	s.Require().ErrorIs(err, ErrConflict)

	// Тот же домен у другого владельца — допустимо.
	s.Require().NoError(s.domains.Create(s.ctx, s.newDomain(2, "example.com", "key00003")))
}

func (s *MemStoreSuite) TestUniqueDomainKey() {
	s.Require().NoError(s.domains.Create(s.ctx, s.newDomain(1, "one.example", "samekey1")))

	err := s.domains.Create(s.ctx, s.newDomain(2, "two.example", "samekey1"))
	s.Require().ErrorIs(err, ErrConflict)
}

func (s *MemStoreSuite) TestListNewestFirst() {
	older := s.newDomain(1, "old.example", "key-old1")
	older.CreatedAt = time.Now().Add(-time.Hour)
	s.Require().NoError(s.domains.Create(s.ctx, older))

	newer := s.newDomain(1, "new.example", "key-new1")
	s.Require().NoError(s.domains.Create(s.ctx, newer))

	s.Require().NoError(s.domains.Create(s.ctx, s.newDomain(7, "other.example", "key-oth1")))

	list, err := s.domains.ListByOwner(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("new.example", list[0].DomainName)
	s.Equal("old.example", list[1].DomainName)
}

func (s *MemStoreSuite) TestDeleteRequiresOwner() {
	d := s.newDomain(1, "example.com", "delkey01")
	s.Require().NoError(s.domains.Create(s.ctx, d))

	// Чужой владелец — not found, запись на месте.
	s.Require().ErrorIs(s.domains.DeleteByID(s.ctx, d.ID, 2), ErrNotFound)
	s.Require().ErrorIs(s.domains.DeleteByKey(s.ctx, "delkey01", 2), ErrNotFound)
	_, err := s.domains.GetByKey(s.ctx, "delkey01")
	s.Require().NoError(err)

	s.Require().NoError(s.domains.DeleteByID(s.ctx, d.ID, 1))
	_, err = s.domains.GetByKey(s.ctx, "delkey01")
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *MemStoreSuite) TestDeleteByKey() {
	d := s.newDomain(3, "bykey.example", "delkey02")
	s.Require().NoError(s.domains.Create(s.ctx, d))

	s.Require().NoError(s.domains.DeleteByKey(s.ctx, "delkey02", 3))
	s.Require().ErrorIs(s.domains.DeleteByKey(s.ctx, "delkey02", 3), ErrNotFound)
}

func (s *MemStoreSuite) TestSubscriptionIdempotentInsert() {
	sub := &models.Subscription{
		UserID:    1,
		DomainKey: "abc123XY",
		Endpoint:  "https://push.example/ep1",
		P256dh:    "p1",
		Auth:      "a1",
	}
	created, err := s.subs.InsertIgnoreDuplicate(s.ctx, sub)
	s.Require().NoError(err)
	s.True(created)

	again := &models.Subscription{
		UserID:    1,
		DomainKey: "abc123XY",
		Endpoint:  "https://push.example/ep1",
		P256dh:    "p1",
		Auth:      "a1",
	}
	created, err = s.subs.InsertIgnoreDuplicate(s.ctx, again)
	s.Require().NoError(err)
	s.False(created)

	s.Len(s.subs.byEndpoint, 1)

	other := &models.Subscription{DomainKey: "abc123XY", Endpoint: "https://push.example/ep2"}
	created, err = s.subs.InsertIgnoreDuplicate(s.ctx, other)
	s.Require().NoError(err)
	s.True(created)
	s.Len(s.subs.byEndpoint, 2)
}
