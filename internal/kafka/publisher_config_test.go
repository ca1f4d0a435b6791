package kafka

import (
	"testing"
	"time"
)

func TestPublisherConfig_batchTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"zero -> default", 0, 50 * time.Millisecond},
		{"negative -> default", -time.Second, 50 * time.Millisecond},
		{"explicit", 200 * time.Millisecond, 200 * time.Millisecond},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &PublisherConfig{BatchTimeout: tt.in}
			if got := cfg.batchTimeout(); got != tt.want {
				t.Fatalf("batchTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
