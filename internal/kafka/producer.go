package kafka

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/Gunvolt24/restaurant_svc/pkg/metrics"
	"github.com/segmentio/kafka-go"
	"github.com/zoobzio/clockz"
)

var _ ports.DishEventPublisher = (*Producer)(nil)

// writer - минимальный контракт над kafka.Writer, подменяется моком в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer - публикация DishUpdatedEvent с повторами на временных ошибках брокера.
type Producer struct {
	writer       writer
	topic        string
	log          ports.Logger
	writeTimeout time.Duration
	retryInitial time.Duration
	retryMax     time.Duration
	maxAttempts  int
	clock        clockz.Clock

	jitterMu   sync.Mutex
	jitterRand *rand.Rand
	closeOnce  sync.Once
}

// NewProducer - конструктор; незаданные параметры получают значения по умолчанию.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = 200 * time.Millisecond
	}

	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 5 * time.Second
	}

	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}

	return &Producer{
		writer:       cfg.Writer(),
		topic:        cfg.Topic,
		log:          log,
		writeTimeout: wt,
		retryInitial: rInit,
		retryMax:     rMax,
		maxAttempts:  attempts,
		clock:        clockz.RealClock,
		jitterRand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock - подмена часов для пауз между повторами.
func (p *Producer) WithClock(clock clockz.Clock) *Producer {
	p.clock = clock
	return p
}

func (p *Producer) getClock() clockz.Clock {
	if p.clock == nil {
		return clockz.RealClock
	}
	return p.clock
}

// PublishDishUpdated - ключ сообщения = id блюда, события одного блюда попадают в одну партицию.
func (p *Producer) PublishDishUpdated(ctx context.Context, ev domain.DishUpdatedEvent) error {
	msg, err := encodeDishUpdated(ev)
	if err != nil {
		metrics.KafkaMessagesFailed.WithLabelValues(p.topic).Inc()
		return err
	}

	retry := p.retryInitial
	for attempt := 1; ; attempt++ {
		writeCtx, cancel := context.WithTimeout(ctx, p.writeTimeout)
		err = p.writer.WriteMessages(writeCtx, msg)
		cancel()

		if err == nil {
			metrics.KafkaMessagesPublished.WithLabelValues(p.topic).Inc()
			return nil
		}
		if ctx.Err() != nil {
			metrics.KafkaMessagesFailed.WithLabelValues(p.topic).Inc()
			return fmt.Errorf("publish dish event: %w", ctx.Err())
		}
		if attempt >= p.maxAttempts || !retryable(err) {
			metrics.KafkaMessagesFailed.WithLabelValues(p.topic).Inc()
			return fmt.Errorf("publish dish event after %d attempt(s): %w", attempt, err)
		}

		sleep := p.withJitterEqual(retry)
		p.log.Warnf(ctx, "kafka write failed dish_id=%d attempt=%d: %v (will retry in %s)", ev.DishID, attempt, err, sleep)
		if !p.sleepWithBackoff(ctx, sleep) {
			metrics.KafkaMessagesFailed.WithLabelValues(p.topic).Inc()
			return fmt.Errorf("publish dish event: %w", ctx.Err())
		}
		retry = p.nextBackoff(retry)
	}
}

// Close - закрывает writer, досылая буферизованные сообщения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
