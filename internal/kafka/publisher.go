package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/Gunvolt24/compasscar/internal/ports"
	"github.com/Gunvolt24/compasscar/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.EventPublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — публикация событий каталога в Kafka.
// Ключ сообщения — car_id: события одного автомобиля попадают в одну партицию
// и сохраняют порядок.
type Publisher struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewPublisher — конструктор. RequireAll: событие считается опубликованным
// после подтверждения всеми ISR.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.batchTimeout(),
	}
	return &Publisher{writer: w, topic: cfg.Topic, log: log}
}

// Publish — сериализует событие и пишет одно сообщение.
func (p *Publisher) Publish(ctx context.Context, ev ports.CarEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.CarID, 10)),
		Value: raw,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.CarEventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write message: %w", err)
	}

	metrics.CarEventsPublished.WithLabelValues(p.topic).Inc()
	return nil
}

// Close - закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// DisabledPublisher — no-op реализация для запуска без брокера.
type DisabledPublisher struct{}

var _ ports.EventPublisher = DisabledPublisher{}

func NewDisabledPublisher() DisabledPublisher { return DisabledPublisher{} }

func (DisabledPublisher) Publish(context.Context, ports.CarEvent) error { return nil }
func (DisabledPublisher) Close() error                                  { return nil }
