package ports

import (
	"context"

	"github.com/Gunvolt24/compasscar/internal/domain"
)

// CarCache — кэш автомобилей по id.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// возврат копий сущности.
type CarCache interface {
	// Get — (car, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, id int64) (*domain.Car, bool)

	// Set — сохранить/обновить автомобиль в кэше.
	Set(ctx context.Context, car *domain.Car) error

	// Invalidate — выбросить запись после мутации.
	Invalidate(ctx context.Context, id int64)

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, cars []*domain.Car) error
}
