package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics — счётчики provisioning/intake. Registerer инжектится,
// чтобы тесты жили на своих приватных реестрах.
type Metrics struct {
	DomainsCreated         prometheus.Counter
	DomainConflicts        prometheus.Counter
	SubscriptionsAccepted  prometheus.Counter
	SubscriptionsDuplicate prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DomainsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "pushka_domains_created_total",
			Help: "Total number of domains provisioned",
		}),
		DomainConflicts: f.NewCounter(prometheus.CounterOpts{
			Name: "pushka_domain_conflicts_total",
			Help: "Total number of domain create attempts rejected as duplicates",
		}),
		SubscriptionsAccepted: f.NewCounter(prometheus.CounterOpts{
			Name: "pushka_subscriptions_accepted_total",
			Help: "Total number of new push subscriptions stored",
		}),
		SubscriptionsDuplicate: f.NewCounter(prometheus.CounterOpts{
			Name: "pushka_subscriptions_duplicate_total",
			Help: "Total number of idempotent re-submissions of a known endpoint",
		}),
	}
}
