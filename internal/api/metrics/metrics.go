// Package metrics defines and registers all custom Prometheus metrics for
// the commerce API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (bad credentials) or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts freshly minted access tokens. Reused tokens are
// counted separately in TokensReusedTotal.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens minted.",
	},
)

// TokensReusedTotal counts logins that returned a still-valid existing token.
var TokensReusedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_reused_total",
		Help:      "Total number of logins served by reusing a valid token.",
	},
)

// AuthDecisionsTotal counts interceptor outcomes at the request boundary.
// Labels:
//   - credential: "bearer" or "guest"
//   - outcome: "authorized", "unauthorized" or "forbidden"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of interceptor authorization decisions.",
	},
	[]string{"credential", "outcome"},
)

// TokenCacheTotal counts token cache lookups, labelled hit or miss.
var TokenCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_cache_total",
		Help:      "Total number of token cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
