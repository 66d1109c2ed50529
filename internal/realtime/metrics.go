package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "boardly",
		Subsystem: "realtime",
		Name:      "connections",
		Help:      "Subscriptions currently registered across all boards.",
	})

	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "boardly",
		Subsystem: "realtime",
		Name:      "messages_total",
		Help:      "Inbound client messages by outcome.",
	}, []string{"result"})

	evictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boardly",
		Subsystem: "realtime",
		Name:      "evictions_total",
		Help:      "Subscriptions dropped because their send buffer was full.",
	})

	rejectedConnections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "boardly",
		Subsystem: "realtime",
		Name:      "rejected_connections_total",
		Help:      "Connection attempts refused during the access check.",
	}, []string{"reason"})
)
