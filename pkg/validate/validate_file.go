package validate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/compasscar/internal/domain"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// CarPayload — запись офлайн-валидации: поля автомобиля + опциональный
// набор аксессуаров.
type CarPayload struct {
	domain.NewCar
	Items []string `json:"items,omitempty"`
}

// ValidateCarPayload — офлайн-правила записи: поля автомобиля и,
// если передан, набор аксессуаров. Проверки дубликата номера здесь нет —
// она требует хранилища.
func ValidateCarPayload(p CarPayload) []string {
	msgs := ValidateCarFields(p.NewCar)
	if p.Items != nil {
		msgs = append(msgs, Items(p.Items)...)
	}
	return msgs
}

// ValidateFile — валидирует файл как JSON (одна запись) или JSONL (запись на строку),
// пишет канонический JSON валидных записей в ow. Возвращает сводку и ошибку,
// если хотя бы одна запись невалидна.
func ValidateFile(filePath string, format InputFormat, ow io.Writer) (string, error) {
	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		case ".json":
			format = FormatJSON
		default:
			// по умолчанию считаем JSON
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		if err := validateRaw(raw, ow); err != nil {
			return "0 valid / 1 invalid", err
		}
		return "1 valid / 0 invalid", nil

	case FormatJSONL:
		var valid, invalid int
		var firstErr error

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := validateRaw([]byte(line), ow); err != nil {
				invalid++
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			valid++
		}
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("scan file: %w", err)
		}

		summary := fmt.Sprintf("%d valid / %d invalid", valid, invalid)
		return summary, firstErr

	default:
		return "", fmt.Errorf("unknown format: %q", format)
	}
}

// validateRaw — одна запись: строгий парсинг + офлайн-правила;
// валидную запись пишем каноническим JSON.
func validateRaw(raw []byte, ow io.Writer) error {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()

	var payload CarPayload
	if err := dec.Decode(&payload); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}

	if msgs := ValidateCarPayload(payload); len(msgs) > 0 {
		return fmt.Errorf("invalid car: %s", strings.Join(msgs, "; "))
	}

	canonical, _ := json.Marshal(payload)
	canonical = append(canonical, '\n')
	if _, err := ow.Write(canonical); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
