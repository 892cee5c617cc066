// Package metrics defines the custom Prometheus metrics for the Conéctar
// clients API. It is the single source of truth for metric names, labels,
// and help strings. HTTP-level request metrics come from echoprometheus and
// are registered by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "conectar"

// LoginsTotal counts successful logins.
// Label:
//   - provider: "local" or "google"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by identity provider.",
	},
	[]string{"provider"},
)

// LoginFailuresTotal counts rejected login attempts.
// Label:
//   - provider: "local" or "google"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts, by identity provider.",
	},
	[]string{"provider"},
)

// ClientsCreatedTotal counts newly created client records.
// Label:
//   - status: initial status of the record
var ClientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of client records created, by initial status.",
	},
	[]string{"status"},
)

// AccountsDeletedTotal counts deleted accounts (cascading deletions of
// owned clients included).
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts deleted.",
	},
)
