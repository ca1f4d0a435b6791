package domain

import (
	"errors"
	"strings"
)

// ErrNotFound — автомобиль с таким id не существует.
var ErrNotFound = errors.New("car not found")

// ValidationError — накопленный список нарушений правил (400-класс).
// Messages упорядочены и непусты; тексты — контракт API (envelope {"errors": [...]}).
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// ConflictError — нарушение уникальности номера (409-класс).
// Отдельный тип: наличие дубликата имеет приоритет над остальными ошибками списка.
type ConflictError struct {
	Messages []string
}

func (e *ConflictError) Error() string {
	return "conflict: " + strings.Join(e.Messages, "; ")
}
