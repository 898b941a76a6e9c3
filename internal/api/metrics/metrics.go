// Package metrics defines and registers all custom Prometheus metrics for the
// hotel management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful token issuances.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: short description of the failure (e.g. "bad_credentials", "token_expired", "unknown_subject")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// PaymentsRecordedTotal counts recorded payments.
// Label:
//   - method: the payment method reported by the client (e.g. "card", "cash")
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded, by method.",
	},
	[]string{"method"},
)

// ── Service order metrics ─────────────────────────────────────────────────────

// OrdersPlacedTotal counts accepted service orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_orders_placed_total",
		Help:      "Total number of service orders accepted.",
	},
)

// OrderAmountMismatchTotal counts orders rejected because the claimed total
// disagreed with the catalog price times quantity.
var OrderAmountMismatchTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_order_amount_mismatch_total",
		Help:      "Total number of service orders rejected for an amount mismatch.",
	},
)
