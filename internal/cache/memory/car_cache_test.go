package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/compasscar/internal/domain"
)

func newCar(id int64) *domain.Car {
	return &domain.Car{
		ID:    id,
		Plate: "ABC-1C34",
		Items: []domain.Item{{Name: "sunroof", CarID: id}},
	}
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, newCar(1))
	got, ok := c.Get(ctx, 1)
	if !ok || got.ID != 1 {
		t.Fatalf("expected hit for id=1")
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, newCar(1))
	if _, ok := c.Get(ctx, 1); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, newCar(1))
	_ = c.Set(ctx, newCar(2))
	// 1 сделать «свежим»
	if _, ok := c.Get(ctx, 1); !ok {
		t.Fatalf("expected hit for id=1")
	}
	// Добавляем 3 — вытеснит 2 (самый старый)
	_ = c.Set(ctx, newCar(3))

	if _, ok := c.Get(ctx, 2); ok {
		t.Fatalf("expected id=2 to be evicted")
	}
	if _, ok := c.Get(ctx, 1); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected id=1 & id=3 to stay in cache")
	}
}

func TestInvalidate(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, newCar(1))
	c.Invalidate(ctx, 1)

	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss after Invalidate")
	}

	// отсутствующий ключ — не паника и не ошибка
	c.Invalidate(ctx, 42)
}

func TestWarmUp(t *testing.T) {
	c := NewLRUCacheTTL(10, 0)
	ctx := context.Background()

	cars := []*domain.Car{newCar(1), newCar(2), newCar(3)}
	if err := c.WarmUp(ctx, cars); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, car := range cars {
		if _, ok := c.Get(ctx, car.ID); !ok {
			t.Fatalf("expected hit for id=%d after warm-up", car.ID)
		}
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	orig := newCar(1)
	_ = c.Set(ctx, orig)

	// меняем то, что вернул Get — не должно влиять на кэш
	c1, _ := c.Get(ctx, 1)
	c1.Items[0].Name = "changed"

	c2, _ := c.Get(ctx, 1)
	if c2.Items[0].Name == "changed" {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
}
