package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/segmentio/kafka-go"
)

// dishUpdatedMessage - формат значения сообщения в топике.
type dishUpdatedMessage struct {
	EventID          string    `json:"event_id"`
	DishID           int64     `json:"dish_id"`
	RestaurantID     int64     `json:"restaurant_id"`
	DishPrice        int64     `json:"dish_price"`
	DishAvailability bool      `json:"dish_availability"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func encodeDishUpdated(ev domain.DishUpdatedEvent) (kafka.Message, error) {
	value, err := json.Marshal(dishUpdatedMessage{
		EventID:          ev.EventID,
		DishID:           ev.DishID,
		RestaurantID:     ev.RestaurantID,
		DishPrice:        ev.Price,
		DishAvailability: ev.Available,
		OccurredAt:       ev.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode dish event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.DishID, 10)),
		Value: value,
		Time:  ev.OccurredAt,
	}, nil
}

// retryable - коды Kafka без признака Temporary не повторяются; сетевые ошибки и таймауты повторяются.
func retryable(err error) bool {
	var kerr kafka.Error
	if errors.As(err, &kerr) {
		return kerr.Temporary()
	}
	return true
}

// sleepWithBackoff ждет d или останавливается по контексту.
func (p *Producer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := p.getClock().NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C():
		return true
	}
}

// nextBackoff - удвоение задержки с потолком retryMax.
func (p *Producer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > p.retryMax {
		return p.retryMax
	}
	return current
}

// withJitterEqual - половина задержки фиксирована, вторая половина случайная.
func (p *Producer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	p.jitterMu.Lock()
	jitter := time.Duration(p.jitterRand.Int63n(int64(d-half) + 1))
	p.jitterMu.Unlock()
	return half + jitter
}
