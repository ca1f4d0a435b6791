package ports

import (
	"context"

	"github.com/Gunvolt24/compasscar/internal/domain"
)

// CarRepository — абстрактное хранилище автомобилей и их аксессуаров.
// Контракт для «не нашли»: (nil, nil) у выборок, domain.ErrNotFound у мутаций.
// Нарушение уникальности номера при записи реализация обязана вернуть
// как *domain.ConflictError (последний рубеж после read-then-decide валидатора).
type CarRepository interface {
	// Create — вставка; id и created_at назначает хранилище.
	Create(ctx context.Context, in domain.NewCar) (*domain.Car, error)

	// GetByID — автомобиль с аксессуарами; (nil, nil), если записи нет.
	GetByID(ctx context.Context, id int64) (*domain.Car, error)

	// FindByPlate — поиск по номеру без аксессуаров; (nil, nil) при промахе.
	FindByPlate(ctx context.Context, plate string) (*domain.Car, error)

	// List — все автомобили с вложенными аксессуарами.
	List(ctx context.Context) ([]*domain.Car, error)

	// UpdateFields — применение непустых полей патча одной записью.
	UpdateFields(ctx context.Context, id int64, patch domain.CarPatch) error

	// ReplaceItems — транзакционная замена полного набора аксессуаров.
	ReplaceItems(ctx context.Context, id int64, names []string) error

	// Delete — удаление автомобиля вместе с аксессуарами.
	Delete(ctx context.Context, id int64) error

	// LastN — последние N автомобилей (для прогрева кэша).
	LastN(ctx context.Context, n int) ([]*domain.Car, error)
}

// PlateIndex — узкий порт для валидатора: только поиск по номеру.
type PlateIndex interface {
	FindByPlate(ctx context.Context, plate string) (*domain.Car, error)
}
