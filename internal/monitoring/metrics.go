package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpdatesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_processed_total",
			Help: "Total number of Telegram updates processed",
		},
		[]string{"kind"},
	)

	AIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_ai_requests_total",
			Help: "Total number of AI relay requests",
		},
		[]string{"kind", "outcome"},
	)
)
