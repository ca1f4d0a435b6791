package ports

import "context"

// Типы событий каталога.
const (
	EventCarCreated       = "car.created"
	EventCarUpdated       = "car.updated"
	EventCarItemsReplaced = "car.items_replaced"
	EventCarDeleted       = "car.deleted"
)

// CarEvent — исходящее событие об изменении каталога.
type CarEvent struct {
	Type  string `json:"type"`
	CarID int64  `json:"car_id"`
	Plate string `json:"plate,omitempty"`
}

// EventPublisher — публикация событий каталога (best-effort: отказ публикации
// не становится отказом запроса).
type EventPublisher interface {
	Publish(ctx context.Context, ev CarEvent) error
	Close() error
}
