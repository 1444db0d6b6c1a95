package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ttt_connections_active",
		Help: "The current number of live WebSocket connections.",
	})
	RoomsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ttt_rooms_open",
		Help: "The current number of registered rooms.",
	})
	EventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ttt_events_received_total",
		Help: "The total number of inbound events, by action.",
	}, []string{"action"})
	EventErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ttt_event_errors_total",
		Help: "The total number of rejected events, by error code.",
	}, []string{"code"})
	MovesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ttt_moves_applied_total",
		Help: "The total number of accepted moves.",
	})
	GamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ttt_games_finished_total",
		Help: "The total number of finished games, by result mark.",
	}, []string{"result"})
)
