package kafka

import "time"

// PublisherConfig — настройки публикации событий.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

func (c *PublisherConfig) batchTimeout() time.Duration {
	if c.BatchTimeout <= 0 {
		// Дефолт kafka-go (1s) слишком ленив для одиночных событий.
		return 50 * time.Millisecond
	}
	return c.BatchTimeout
}
