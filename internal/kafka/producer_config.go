package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// ProducerConfig - параметры публикации событий об изменении блюд.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	RetryInitial time.Duration
	RetryMax     time.Duration
	MaxAttempts  int
}

// Writer - kafka.Writer с подтверждением от всех реплик.
// Повторы выполняет Producer, поэтому у самого writer одна попытка.
func (c *ProducerConfig) Writer() *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            1,
		WriteTimeout:           c.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
}
