package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы проверки заказа (метка outcome).
const (
	OutcomeAccepted          = "accepted"
	OutcomeNoDishes          = "no_dishes"
	OutcomeClosed            = "closed"
	OutcomeOutOfZone         = "out_of_zone"
	OutcomeDishesMissing     = "dishes_missing"
	OutcomeDishesUnavailable = "dishes_unavailable"
	OutcomeError             = "error"
)

var OrderValidations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_validations_total",
		Help: "Order validations by outcome",
	},
	[]string{"outcome"},
)

var (
	KafkaMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Number of messages written to Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages that could not be written after all retries",
		},
		[]string{"topic"},
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

// MustRegister - регистрация в глобальном реестре; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			OrderValidations,
			KafkaMessagesPublished, KafkaMessagesFailed,
			CacheOps, CacheSize,
		)
	})
}
