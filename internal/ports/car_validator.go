package ports

import (
	"context"

	"github.com/Gunvolt24/compasscar/internal/domain"
)

// CarValidator — бизнес-правила автомобиля. Пустой список — данные валидны;
// error — отказ самой проверки (например, недоступно хранилище при поиске дубликата).
type CarValidator interface {
	ValidateCreate(ctx context.Context, in domain.NewCar) ([]string, error)
	ValidateUpdate(ctx context.Context, current *domain.Car, patch domain.CarPatch) ([]string, error)
}
