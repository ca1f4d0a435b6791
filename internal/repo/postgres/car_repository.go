package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/compasscar/internal/domain"
	"github.com/Gunvolt24/compasscar/internal/ports"
	"github.com/Gunvolt24/compasscar/pkg/validate"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CarRepository удовлетворяет интерфейсу CarRepository.
var _ ports.CarRepository = (*CarRepository)(nil)

// CarRepository — реализация репозитория автомобилей на Postgres (pgxpool).
type CarRepository struct {
	pool *pgxpool.Pool
}

// NewCarRepository - конструктор CarRepository.
func NewCarRepository(pool *pgxpool.Pool) *CarRepository { return &CarRepository{pool: pool} }

// Create — вставка автомобиля; id и created_at назначает БД.
// Уникальный индекс по plate — последний рубеж после read-then-decide проверки
// валидатора: конкурентный дубликат всплывает здесь как ConflictError.
func (r *CarRepository) Create(ctx context.Context, in domain.NewCar) (*domain.Car, error) {
	car := &domain.Car{
		Brand: in.Brand,
		Model: in.Model,
		Plate: in.Plate,
		Year:  in.Year,
		Items: []domain.Item{},
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO cars (brand, model, plate, year)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, in.Brand, in.Model, in.Plate, in.Year).Scan(&car.ID, &car.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Messages: []string{validate.MsgCarAlreadyRegistered}}
		}
		return nil, fmt.Errorf("insert car: %w", err)
	}

	return car, nil
}

// GetByID — автомобиль с аксессуарами. Если не нашли, возвращает (nil, nil).
func (r *CarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	car := domain.Car{Items: []domain.Item{}}

	err := r.pool.QueryRow(ctx, `
		SELECT id, brand, model, plate, year, created_at
		FROM cars WHERE id = $1
	`, id).Scan(&car.ID, &car.Brand, &car.Model, &car.Plate, &car.Year, &car.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select car: %w", err)
	}

	// items (0..N)
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, car_id, created_at
		FROM cars_items WHERE car_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.CarID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		car.Items = append(car.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}

	return &car, nil
}

// FindByPlate — поиск по номеру без аксессуаров; (nil, nil) при промахе.
func (r *CarRepository) FindByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	var car domain.Car

	err := r.pool.QueryRow(ctx, `
		SELECT id, brand, model, plate, year, created_at
		FROM cars WHERE plate = $1
	`, plate).Scan(&car.ID, &car.Brand, &car.Model, &car.Plate, &car.Year, &car.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select car by plate: %w", err)
	}

	return &car, nil
}

// List — все автомобили с вложенными аксессуарами.
// Два запроса на выборку: база + все items одним ANY, затем склейка в памяти.
func (r *CarRepository) List(ctx context.Context) ([]*domain.Car, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, brand, model, plate, year, created_at
		FROM cars
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select cars: %w", err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	byID := make(map[int64]*domain.Car)
	ids := make([]int64, 0)

	for rows.Next() {
		car := &domain.Car{Items: []domain.Item{}}
		if err := rows.Scan(&car.ID, &car.Brand, &car.Model, &car.Plate, &car.Year, &car.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, car)
		byID[car.ID] = car
		ids = append(ids, car.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cars rows: %w", err)
	}
	if len(cars) == 0 {
		return cars, nil
	}

	iRows, err := r.pool.Query(ctx, `
		SELECT id, name, car_id, created_at
		FROM cars_items
		WHERE car_id = ANY($1::bigint[])
		ORDER BY car_id, id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var item domain.Item
		if err := iRows.Scan(&item.ID, &item.Name, &item.CarID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if car := byID[item.CarID]; car != nil {
			car.Items = append(car.Items, item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}

	return cars, nil
}

// UpdateFields — применение непустых полей патча одним UPDATE.
// Пустой патч — no-op по контракту (оркестратор отсекает его раньше).
func (r *CarRepository) UpdateFields(ctx context.Context, id int64, patch domain.CarPatch) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if patch.Brand != "" {
		add("brand", patch.Brand)
	}
	if patch.Model != "" {
		add("model", patch.Model)
	}
	if patch.Plate != "" {
		add("plate", patch.Plate)
	}
	if patch.Year != 0 {
		add("year", patch.Year)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE cars SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Messages: []string{validate.MsgCarAlreadyRegistered}}
		}
		return fmt.Errorf("update car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceItems — транзакционная замена полного набора аксессуаров:
// удаляем прежний набор и вставляем новый одним COPY (CopyFromRows).
// Частичных состояний «часть вставилась» снаружи транзакции не видно.
func (r *CarRepository) ReplaceItems(ctx context.Context, id int64, names []string) error {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = transaction.Exec(ctx, `DELETE FROM cars_items WHERE car_id = $1`, id); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}

	if len(names) > 0 {
		rows := make([][]any, 0, len(names))
		for _, name := range names {
			rows = append(rows, []any{name, id})
		}
		if _, err = transaction.CopyFrom(
			ctx,
			pgx.Identifier{"cars_items"},
			[]string{"name", "car_id"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("copy items: %w", err)
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete — транзакционное удаление автомобиля вместе с аксессуарами.
func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = transaction.Exec(ctx, `DELETE FROM cars_items WHERE car_id = $1`, id); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}

	tag, err := transaction.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LastN — последние N автомобилей (для прогрева кэша).
// Используем подход N+1: берём только id, затем дочитываем полные записи.
func (r *CarRepository) LastN(ctx context.Context, n int) ([]*domain.Car, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id
		FROM cars
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last ids: %w", err)
	}
	defer rows.Close()

	var result []*domain.Car
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		car, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if car != nil {
			result = append(result, car)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last rows: %w", err)
	}

	return result, nil
}

// isUniqueViolation — нарушение уникального индекса (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
