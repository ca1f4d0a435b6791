package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/compasscar/internal/domain"
	"github.com/Gunvolt24/compasscar/internal/ports"
	"github.com/Gunvolt24/compasscar/pkg/metrics"
	"github.com/Gunvolt24/compasscar/pkg/validate"
)

// Проверка, что CarService удовлетворяет порту CarService.
var _ ports.CarService = (*CarService)(nil)

// CarService — прикладная логика каталога (без знаний о транспорте).
// Каждая операция — последовательность «проверить → изменить → оповестить»;
// публикация событий best-effort и не влияет на исход запроса.
type CarService struct {
	repo      ports.CarRepository  // прямой доступ к хранилищу
	cache     ports.CarCache       // прямой доступ к кэшу
	log       ports.Logger         // прямой доступ к логгеру
	validator ports.CarValidator   // бизнес-правила автомобиля
	events    ports.EventPublisher // исходящие события каталога
}

// NewCarService — DI-конструктор.
func NewCarService(
	repo ports.CarRepository,
	cache ports.CarCache,
	log ports.Logger,
	validator ports.CarValidator,
	events ports.EventPublisher,
) *CarService {
	return &CarService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		events:    events,
	}
}

// ruleError — классификация накопленного списка ошибок:
// дубликат номера имеет приоритет и даёт ConflictError, иначе ValidationError.
func ruleError(msgs []string) error {
	if validate.HasConflict(msgs) {
		return &domain.ConflictError{Messages: msgs}
	}
	return &domain.ValidationError{Messages: msgs}
}

// CreateCar — создание автомобиля: правила создания (включая read-then-decide
// проверку дубликата), затем вставка. Гонка двух конкурентных создателей
// одного номера закрывается уникальным индексом БД: проигравший получает
// тот же ConflictError из репозитория.
func (s *CarService) CreateCar(ctx context.Context, in domain.NewCar) (*domain.Car, error) {
	msgs, err := s.validator.ValidateCreate(ctx, in)
	if err != nil {
		s.log.Errorf(ctx, "validate create failed plate=%s err=%v", in.Plate, err)
		return nil, fmt.Errorf("validate create: %w", err)
	}
	if len(msgs) > 0 {
		s.log.Infof(ctx, "create rejected plate=%s errors=%d", in.Plate, len(msgs))
		return nil, ruleError(msgs)
	}

	car, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	metrics.CarMutations.WithLabelValues("create").Inc()

	if setErr := s.cache.Set(ctx, car); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed car_id=%d err=%v", car.ID, setErr)
	}
	s.publish(ctx, ports.CarEvent{Type: ports.EventCarCreated, CarID: car.ID, Plate: car.Plate})

	s.log.Infof(ctx, "car created id=%d plate=%s", car.ID, car.Plate)
	return car, nil
}

// ListCars — все автомобили с вложенными аксессуарами.
func (s *CarService) ListCars(ctx context.Context) ([]*domain.Car, error) {
	return s.repo.List(ctx)
}

// GetCar — автомобиль по id: сначала из кэша, при промахе — из БД с записью в кэш.
// Отсутствие записи — domain.ErrNotFound.
func (s *CarService) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	if car, found := s.cache.Get(ctx, id); found {
		s.log.Infof(ctx, "cache hit for car=%d", id)
		return car, nil
	}
	s.log.Infof(ctx, "cache miss for car=%d", id)

	start := time.Now()
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed car_id=%d err=%v", id, err)
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}

	if setErr := s.cache.Set(ctx, car); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed car_id=%d err=%v", id, setErr)
	}

	s.log.Infof(ctx, "db fetch car_id=%d took=%s", id, time.Since(start))
	return car, nil
}

// ReplaceItems — полная замена набора аксессуаров (не merge):
// существование автомобиля → правила набора → транзакционная замена в репозитории.
func (s *CarService) ReplaceItems(ctx context.Context, id int64, names []string) error {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed car_id=%d err=%v", id, err)
		return err
	}
	if car == nil {
		return domain.ErrNotFound
	}

	if msgs := validate.Items(names); len(msgs) > 0 {
		s.log.Infof(ctx, "replace items rejected car_id=%d errors=%d", id, len(msgs))
		return &domain.ValidationError{Messages: msgs}
	}

	if err := s.repo.ReplaceItems(ctx, id, names); err != nil {
		s.log.Errorf(ctx, "repo.ReplaceItems failed car_id=%d err=%v", id, err)
		return err
	}
	metrics.CarMutations.WithLabelValues("replace_items").Inc()

	s.cache.Invalidate(ctx, id)
	s.publish(ctx, ports.CarEvent{Type: ports.EventCarItemsReplaced, CarID: id, Plate: car.Plate})

	s.log.Infof(ctx, "items replaced car_id=%d items=%d", id, len(names))
	return nil
}

// UpdateCar — частичное обновление: существование → правила патча →
// пустой патч завершается успехом без мутации → одиночный UPDATE.
func (s *CarService) UpdateCar(ctx context.Context, id int64, patch domain.CarPatch) error {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed car_id=%d err=%v", id, err)
		return err
	}
	if car == nil {
		return domain.ErrNotFound
	}

	msgs, err := s.validator.ValidateUpdate(ctx, car, patch)
	if err != nil {
		s.log.Errorf(ctx, "validate update failed car_id=%d err=%v", id, err)
		return fmt.Errorf("validate update: %w", err)
	}
	if len(msgs) > 0 {
		s.log.Infof(ctx, "update rejected car_id=%d errors=%d", id, len(msgs))
		return ruleError(msgs)
	}

	// Ни одного распознанного поля — успех без обращения к хранилищу.
	if patch.IsEmpty() {
		s.log.Infof(ctx, "update no-op car_id=%d", id)
		return nil
	}

	if err := s.repo.UpdateFields(ctx, id, patch); err != nil {
		return err
	}
	metrics.CarMutations.WithLabelValues("update").Inc()

	s.cache.Invalidate(ctx, id)
	s.publish(ctx, ports.CarEvent{Type: ports.EventCarUpdated, CarID: id, Plate: car.Plate})

	s.log.Infof(ctx, "car updated id=%d", id)
	return nil
}

// DeleteCar — удаление автомобиля вместе с аксессуарами.
func (s *CarService) DeleteCar(ctx context.Context, id int64) error {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed car_id=%d err=%v", id, err)
		return err
	}
	if car == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Errorf(ctx, "repo.Delete failed car_id=%d err=%v", id, err)
		return err
	}
	metrics.CarMutations.WithLabelValues("delete").Inc()

	s.cache.Invalidate(ctx, id)
	s.publish(ctx, ports.CarEvent{Type: ports.EventCarDeleted, CarID: id, Plate: car.Plate})

	s.log.Infof(ctx, "car deleted id=%d plate=%s", id, car.Plate)
	return nil
}

// WarmUpCache — прогрев кэша последними N автомобилями из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *CarService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d cars in %s", len(list), time.Since(start))
	return nil
}

// publish — best-effort публикация события: отказ только в лог.
func (s *CarService) publish(ctx context.Context, ev ports.CarEvent) {
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warnf(ctx, "event publish failed type=%s car_id=%d err=%v", ev.Type, ev.CarID, err)
	}
}
