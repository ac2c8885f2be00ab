package highscore

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "errors_total",
			Help:      "Store calls that failed, excluding missing keys.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func countError(method string, err error) {
	if err != nil && err != ErrNotFound {
		storeErrors.WithLabelValues(method).Inc()
	}
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s Store }

func (m *metrics) Get(ctx context.Context, key string) (int64, error) {
	defer instrument("Get")()
	v, err := m.s.Get(ctx, key)
	countError("Get", err)
	return v, err
}

func (m *metrics) Set(ctx context.Context, key string, value int64) error {
	defer instrument("Set")()
	err := m.s.Set(ctx, key, value)
	countError("Set", err)
	return err
}

// Close closes the wrapped store when it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
