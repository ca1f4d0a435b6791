package ports

import (
	"context"

	"github.com/Gunvolt24/compasscar/internal/domain"
)

// CarService — прикладные операции каталога; контракт для транспортного слоя.
// Классификация отказов: domain.ErrNotFound, *domain.ValidationError,
// *domain.ConflictError; всё прочее — внутренняя ошибка.
type CarService interface {
	CreateCar(ctx context.Context, in domain.NewCar) (*domain.Car, error)
	ListCars(ctx context.Context) ([]*domain.Car, error)
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
	ReplaceItems(ctx context.Context, id int64, names []string) error
	UpdateCar(ctx context.Context, id int64, patch domain.CarPatch) error
	DeleteCar(ctx context.Context, id int64) error
}
