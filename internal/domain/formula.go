package domain

import "time"

// Formula represents a named, priced service package for a vehicle category
// Бронирования копируют название и цену формулы по значению,
// поэтому изменение формулы не затрагивает прошлые бронирования
type Formula struct {
	ID       int64
	Category VehicleCategory
	// Name уникально в пределах категории, используется для поиска длительности и цены
	Name  string
	Price float64
	// Duration свободный текст, введённый администратором: "1h30", "2h" или "45" (минуты)
	Duration string
	Icon     string
	// Services упорядоченный список включённых услуг
	Services []string

	// Опция "premium wash", продаваемая вместе с формулой
	PremiumWash      bool
	PremiumWashPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceOption переключатель показа дополнительной услуги в форме бронирования
// Цены допов считаются на фронтенде, сервер хранит только видимость
type ServiceOption struct {
	ID        int64
	Category  VehicleCategory
	Name      string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
