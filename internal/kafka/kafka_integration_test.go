//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	ikafka "github.com/Gunvolt24/restaurant_svc/internal/kafka"
	"github.com/Gunvolt24/restaurant_svc/internal/testutil"
	"github.com/Gunvolt24/restaurant_svc/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

func TestKafka_PublishDishUpdated_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, err := testutil.StartKafkaTC(ctxStart, "dish-updates-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kf.Stop(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, err := kf.Topic(ctx, safe(t))
	require.NoError(t, err)

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	producer := ikafka.NewProducer(&ikafka.ProducerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		MaxAttempts: 5,
	}, logg)
	t.Cleanup(func() { _ = producer.Close() })

	ev := domain.DishUpdatedEvent{
		EventID:      "it-event-1",
		DishID:       101,
		RestaurantID: 5,
		Price:        990,
		Available:    true,
		OccurredAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, producer.PublishDishUpdated(ctx, ev))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
	})
	t.Cleanup(func() { _ = reader.Close() })

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, "101", string(msg.Key))

	var body struct {
		EventID          string    `json:"event_id"`
		DishID           int64     `json:"dish_id"`
		RestaurantID     int64     `json:"restaurant_id"`
		DishPrice        int64     `json:"dish_price"`
		DishAvailability bool      `json:"dish_availability"`
		OccurredAt       time.Time `json:"occurred_at"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	require.Equal(t, ev.EventID, body.EventID)
	require.Equal(t, ev.DishID, body.DishID)
	require.Equal(t, ev.RestaurantID, body.RestaurantID)
	require.Equal(t, ev.Price, body.DishPrice)
	require.True(t, body.DishAvailability)
	require.True(t, ev.OccurredAt.Equal(body.OccurredAt))
}
