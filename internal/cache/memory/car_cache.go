package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/compasscar/internal/domain"
	"github.com/Gunvolt24/compasscar/internal/ports"
	"github.com/Gunvolt24/compasscar/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет порту CarCache.
var _ ports.CarCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        int64
	car       *domain.Car
	expiresAt time.Time
}

// LRUCacheTTL — кэш автомобилей по id: LRU-вытеснение + TTL.
// ttl <= 0 отключает истечение.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[int64]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, id int64) (*domain.Car, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneCar(ent.car), true
}

func (c *LRUCacheTTL) Set(_ context.Context, car *domain.Car) error {
	if car == nil || car.ID == 0 {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[car.ID]; ok {
		ent := elem.Value.(*entry)
		ent.car = cloneCar(car)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        car.ID,
		car:       cloneCar(car),
		expiresAt: c.expiryFrom(now),
	})
	c.index[car.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Invalidate — выбрасывает запись после мутации; промах — не ошибка.
func (c *LRUCacheTTL) Invalidate(_ context.Context, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[id]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

func (c *LRUCacheTTL) WarmUp(ctx context.Context, cars []*domain.Car) error {
	for _, car := range cars {
		if err := c.Set(ctx, car); err != nil {
			return err
		}
	}
	return nil
}
