package session

import "github.com/prometheus/client_golang/prometheus"

var (
	ticks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "ticks_total",
			Help:      "Ticks applied, by outcome.",
		},
		[]string{"outcome"},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "tick_duration_seconds",
			Help:      "Time spent applying a single tick.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 8),
		},
	)
	gamesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "games_total",
			Help:      "Games created by resets.",
		},
	)
	speed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "speed_milliseconds",
			Help:      "Tick interval of the most recently ticked game.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticks, tickDuration, gamesCreated, speed)
}
