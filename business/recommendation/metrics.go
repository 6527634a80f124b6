package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Count of recommendation requests by outcome (served, no_profile).",
		},
		[]string{"outcome"},
	)

	SearchRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_search_requests_total",
			Help: "Count of catalog text-search fallback requests.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendRequestsTotal, SearchRequestsTotal)
}
