// Package metrics exposes Prometheus counters for the API gateway. They are
// registered on the default registry; TWCLI_DEBUG users can dump them via
// expvar-style tooling or tests can read them with testutil.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts completed API requests by method and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twcli_api_requests_total",
		Help: "Completed API requests by method and HTTP status.",
	}, []string{"method", "status"})

	// NetworkErrorsTotal counts requests that never produced a response.
	NetworkErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twcli_api_network_errors_total",
		Help: "API requests that failed before receiving a response.",
	})

	// TokenRefreshesTotal counts token refresh attempts by result.
	TokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twcli_token_refreshes_total",
		Help: "Access token refresh attempts by result.",
	}, []string{"result"})
)
