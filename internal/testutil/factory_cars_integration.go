//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/compasscar/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// UniquePlate — валидный номер формата ABC-1C34 со случайной цифровой частью.
func UniquePlate() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	letters := [3]byte{'A' + b[0]%26, 'A' + b[1]%26, 'A' + b[2]%26}
	return fmt.Sprintf("%s-%d%d%d%d", letters, b[3]%10, b[4]%10, b[5]%10, (b[3]+b[4])%10)
}

// MakeNewCar — мини-генератор валидной заявки на создание.
func MakeNewCar(opts ...func(*domain.NewCar)) domain.NewCar {
	in := domain.NewCar{
		Brand: "Toyota",
		Model: "Corolla-" + UniqSuffix(),
		Plate: UniquePlate(),
		Year:  2020,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
