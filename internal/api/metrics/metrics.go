// Package metrics defines and registers all custom Prometheus metrics for the
// investment platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "investment"

// --- Auth metrics ---

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "entrepreneur", "investor", or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// --- Resource metrics ---

// ProjectsCreatedTotal counts newly published projects.
// Label:
//   - category: project category as supplied by the owner
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by category.",
	},
	[]string{"category"},
)

// InvestmentsCreatedTotal counts recorded ledger entries.
var InvestmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_created_total",
		Help:      "Total number of investments recorded.",
	},
)

// InvestmentsDedupTotal counts idempotency decisions on investment creation.
// Label:
//   - result: "hit" (replayed existing row) or "miss" (new row)
var InvestmentsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_dedup_total",
		Help:      "Total number of idempotency checks on investment creation, by result.",
	},
	[]string{"result"},
)
