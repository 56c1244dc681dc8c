package stubapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics register with the default registry at import time; the router
// exposes them on /metrics.

const namespace = "storefront_stub"

// AuthFailuresTotal counts rejected requests by reason.
// Labels:
//   - reason: "missing_header", "bad_header", "invalid_token", "missing_claims"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// NotificationsTotal counts supplier low-stock notifications by outcome.
// Labels:
//   - result: "sent" or "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "supplier_notifications_total",
		Help:      "Total number of supplier low-stock notifications, by result.",
	},
	[]string{"result"},
)
