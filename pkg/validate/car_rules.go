package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/compasscar/internal/domain"
	"github.com/Gunvolt24/compasscar/internal/ports"
)

// Границы допустимого года выпуска.
const (
	YearMin = 2016
	YearMax = 2026
)

// Проверка, что CarRuleValidator удовлетворяет порту CarValidator.
var _ ports.CarValidator = (*CarRuleValidator)(nil)

// CarRuleValidator — правила создания/обновления автомобиля.
// Ошибки накапливаются в упорядоченный список, без short-circuit;
// проверка дубликата — чтение из хранилища через порт (read-then-decide,
// гонка с конкурентной вставкой закрывается уникальным индексом БД).
type CarRuleValidator struct {
	cars ports.PlateIndex
}

// NewCarRuleValidator — конструктор; cars — доступ к поиску по номеру.
func NewCarRuleValidator(cars ports.PlateIndex) *CarRuleValidator {
	return &CarRuleValidator{cars: cars}
}

// ValidateCreate — правила создания: все поля обязательны, год в диапазоне,
// номер в формате и не занят. Возвращает (список ошибок, ошибка чтения хранилища).
func (v *CarRuleValidator) ValidateCreate(ctx context.Context, in domain.NewCar) ([]string, error) {
	msgs := ValidateCarFields(in)

	// Дубликат ищем при любом непустом номере, даже если формат не прошёл.
	if in.Plate != "" {
		existing, err := v.cars.FindByPlate(ctx, in.Plate)
		if err != nil {
			return nil, fmt.Errorf("find by plate: %w", err)
		}
		if existing != nil {
			msgs = append(msgs, MsgCarAlreadyRegistered)
		}
	}

	return msgs, nil
}

// ValidateCarFields — офлайн-часть правил создания (без обращения к хранилищу).
// Используется и CLI-валидатором.
// Порядок сообщений фиксирован: сначала все «required», затем диапазон года,
// затем формат номера.
func ValidateCarFields(in domain.NewCar) []string {
	var msgs []string

	if in.Brand == "" {
		msgs = append(msgs, MsgBrandRequired)
	}
	if in.Model == "" {
		msgs = append(msgs, MsgModelRequired)
	}
	if in.Year == 0 {
		msgs = append(msgs, MsgYearRequired)
	}
	if in.Plate == "" {
		msgs = append(msgs, MsgPlateRequired)
	}
	// Диапазон проверяем только для заданного года (нулевой уже отмечен как required).
	if in.Year != 0 && (in.Year < YearMin || in.Year > YearMax) {
		msgs = append(msgs, MsgYearOutOfRange)
	}
	if in.Plate != "" && !PlateFormat(in.Plate) {
		msgs = append(msgs, MsgPlateBadFormat)
	}

	return msgs
}

// ValidateUpdate — правила разрежённого патча:
//   - brand без model в одном патче запрещён (правило парности);
//   - год, если передан, в диапазоне;
//   - номер, если передан, проверяется на формат (отсутствующий номер
//     формат-валиден по построению патча) и, при отличии от текущего,
//     на коллизию с другим автомобилем.
func (v *CarRuleValidator) ValidateUpdate(ctx context.Context, current *domain.Car, patch domain.CarPatch) ([]string, error) {
	var msgs []string

	if patch.Brand != "" && patch.Model == "" {
		msgs = append(msgs, MsgModelMustBeInformed)
	}
	if patch.Year != 0 && (patch.Year < YearMin || patch.Year > YearMax) {
		msgs = append(msgs, MsgYearOutOfRange)
	}
	if patch.Plate != "" && !PlateFormat(patch.Plate) {
		msgs = append(msgs, MsgPlateBadFormat)
	}

	if patch.Plate != "" && patch.Plate != current.Plate {
		existing, err := v.cars.FindByPlate(ctx, patch.Plate)
		if err != nil {
			return nil, fmt.Errorf("find by plate: %w", err)
		}
		if existing != nil {
			msgs = append(msgs, MsgCarAlreadyRegistered)
		}
	}

	return msgs, nil
}
