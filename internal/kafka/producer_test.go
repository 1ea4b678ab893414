package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/kafka/mocks"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func newTestProducer(w writer, attempts int) *Producer {
	return &Producer{
		writer: w, topic: "dish-updates", log: nopLogger{},
		writeTimeout: 50 * time.Millisecond,
		retryInitial: 2 * time.Millisecond,
		retryMax:     5 * time.Millisecond,
		maxAttempts:  attempts,
		jitterRand:   rand.New(rand.NewSource(1)),
	}
}

func dishEvent() domain.DishUpdatedEvent {
	return domain.DishUpdatedEvent{
		EventID:      "0b7c6a4e-1d2f-4c35-9a7e-3f1f6f1f0a01",
		DishID:       42,
		RestaurantID: 7,
		Price:        1250,
		Available:    false,
		OccurredAt:   time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublish_OK_MessageFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	var got kafka.Message
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			got = msgs[0]
			return nil
		})

	p := newTestProducer(w, 3)
	require.NoError(t, p.PublishDishUpdated(context.Background(), dishEvent()))

	require.Equal(t, "42", string(got.Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.Value, &body))
	require.Equal(t, "0b7c6a4e-1d2f-4c35-9a7e-3f1f6f1f0a01", body["event_id"])
	require.EqualValues(t, 42, body["dish_id"])
	require.EqualValues(t, 7, body["restaurant_id"])
	require.EqualValues(t, 1250, body["dish_price"])
	require.Equal(t, false, body["dish_availability"])
	require.Equal(t, "2026-01-05T12:00:00Z", body["occurred_at"])
}

func TestPublish_RetriesTransientThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	gomock.InOrder(
		w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")),
		w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.LeaderNotAvailable),
		w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
	)

	p := newTestProducer(w, 3)
	require.NoError(t, p.PublishDishUpdated(context.Background(), dishEvent()))
}

func TestPublish_RetryPausesFollowInjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	gomock.InOrder(
		w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(2),
		w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
	)

	clock := clockz.NewFakeClock()
	p := newTestProducer(w, 3).WithClock(clock)
	p.retryInitial = time.Hour
	p.retryMax = time.Hour

	done := make(chan error, 1)
	go func() { done <- p.PublishDishUpdated(context.Background(), dishEvent()) }()

	for i := 0; i < 2; i++ {
		require.Eventually(t, clock.HasWaiters, time.Second, time.Millisecond)
		clock.Advance(time.Hour)
		clock.BlockUntilReady()
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("publish did not finish after advancing the clock")
	}
}

func TestSleepWithBackoff_ContextWinsOverClock(t *testing.T) {
	p := newTestProducer(nil, 1).WithClock(clockz.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, p.sleepWithBackoff(ctx, time.Hour))
}

func TestPublish_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(2)

	p := newTestProducer(w, 2)
	err := p.PublishDishUpdated(context.Background(), dishEvent())
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 2 attempt(s)")
}

func TestPublish_NonRetryableKafkaError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.MessageSizeTooLarge).Times(1)

	p := newTestProducer(w, 5)
	err := p.PublishDishUpdated(context.Background(), dishEvent())
	require.ErrorIs(t, err, kafka.MessageSizeTooLarge)
}

func TestPublish_ContextCanceledStopsRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ...kafka.Message) error {
			cancel()
			return errors.New("write interrupted")
		})

	p := newTestProducer(w, 5)
	err := p.PublishDishUpdated(ctx, dishEvent())
	require.ErrorIs(t, err, context.Canceled)
}

func TestClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	w.EXPECT().Close().Return(nil).Times(1)

	p := newTestProducer(w, 1)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}

func TestBackoffHelpers(t *testing.T) {
	p := newTestProducer(nil, 1)

	require.Equal(t, 4*time.Millisecond, p.nextBackoff(2*time.Millisecond))
	require.Equal(t, 5*time.Millisecond, p.nextBackoff(4*time.Millisecond))
	require.Zero(t, p.withJitterEqual(0))

	for i := 0; i < 100; i++ {
		d := p.withJitterEqual(10 * time.Millisecond)
		require.GreaterOrEqual(t, d, 5*time.Millisecond)
		require.LessOrEqual(t, d, 10*time.Millisecond)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, p.sleepWithBackoff(ctx, time.Second))
	require.True(t, p.sleepWithBackoff(context.Background(), time.Millisecond))
}

func TestProducerConfig_Writer(t *testing.T) {
	t.Parallel()

	cfg := ProducerConfig{
		Brokers:      []string{"k1:9092", "k2:9092"},
		Topic:        "dish-updates",
		WriteTimeout: 3 * time.Second,
	}
	w := cfg.Writer()

	require.Equal(t, "dish-updates", w.Topic)
	require.Equal(t, kafka.RequireAll, w.RequiredAcks)
	require.Equal(t, 1, w.MaxAttempts)
	require.Equal(t, 3*time.Second, w.WriteTimeout)
	require.IsType(t, &kafka.Hash{}, w.Balancer)
}
