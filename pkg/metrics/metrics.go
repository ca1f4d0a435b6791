package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CarEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_events_published_total",
			Help: "Number of catalog events published to Kafka",
		},
		[]string{"topic"},
	)
	CarEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_events_failed_total",
			Help: "Number of catalog events failed to publish",
		},
		[]string{"topic"},
	)
	CarMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_mutations_total",
			Help: "Number of successful car mutations",
		},
		[]string{"op"}, // create|update|replace_items|delete
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|invalidated
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация коллекторов; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(CarEventsPublished, CarEventsFailed, CarMutations, CacheOps, CacheSize)
	})
}
