package domain

import "time"

// Car — основная сущность каталога: автомобиль с уникальным госномером.
type Car struct {
	ID        int64     `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	Items     []Item    `json:"items"`
}

// Item — именованный аксессуар, принадлежащий ровно одному автомобилю.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CarID     int64     `json:"car_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCar — поля заявки на создание автомобиля (id и created_at назначает хранилище).
type NewCar struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Year  int    `json:"year"`
}

// CarPatch — разрежённый патч для частичного обновления.
// Учитываются только непустые поля (пустая строка / нулевой год = поле не передано).
type CarPatch struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Year  int    `json:"year"`
}

// IsEmpty — патч без единого распознанного поля.
func (p CarPatch) IsEmpty() bool {
	return p.Brand == "" && p.Model == "" && p.Plate == "" && p.Year == 0
}

// ItemNames — имена аксессуаров автомобиля в порядке хранения.
func (c *Car) ItemNames() []string {
	names := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		names = append(names, item.Name)
	}
	return names
}
