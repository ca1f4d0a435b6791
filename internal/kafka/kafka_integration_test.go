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

	ikafka "github.com/Gunvolt24/compasscar/internal/kafka"
	"github.com/Gunvolt24/compasscar/internal/ports"
	"github.com/Gunvolt24/compasscar/internal/testutil"
	"github.com/Gunvolt24/compasscar/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

func newReader(brokers []string, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    1 << 20,
	})
}

// 1) Опубликованное событие доезжает до брокера: ключ — car_id, тело — JSON события
func TestKafka_Publish_RoundTrip_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "car-events-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic := testutil.UniqueTopic(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{
		Brokers:      kf.Brokers,
		Topic:        topic,
		BatchTimeout: 20 * time.Millisecond,
	}, logg)
	t.Cleanup(func() { _ = pub.Close() })

	ev := ports.CarEvent{Type: ports.EventCarCreated, CarID: 42, Plate: "ABC-1C34"}
	require.NoError(t, pub.Publish(ctx, ev))

	r := newReader(kf.Brokers, topic)
	t.Cleanup(func() { _ = r.Close() })

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, "42", string(msg.Key))

	var got ports.CarEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, ev, got)
}

// 2) События одного автомобиля сохраняют порядок публикации
func TestKafka_Publish_OrderPreserved_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "car-events-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic := testutil.UniqueTopic(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{
		Brokers:      kf.Brokers,
		Topic:        topic,
		BatchTimeout: 20 * time.Millisecond,
	}, logg)
	t.Cleanup(func() { _ = pub.Close() })

	want := []string{
		ports.EventCarCreated,
		ports.EventCarUpdated,
		ports.EventCarItemsReplaced,
		ports.EventCarDeleted,
	}
	for _, typ := range want {
		require.NoError(t, pub.Publish(ctx, ports.CarEvent{Type: typ, CarID: 7, Plate: "XYZ-9J01"}))
	}

	r := newReader(kf.Brokers, topic)
	t.Cleanup(func() { _ = r.Close() })

	var got []string
	for range want {
		msg, err := r.ReadMessage(ctx)
		require.NoError(t, err)
		require.Equal(t, "7", string(msg.Key))

		var ev ports.CarEvent
		require.NoError(t, json.Unmarshal(msg.Value, &ev))
		got = append(got, ev.Type)
	}
	require.Equal(t, want, got)
}
