package domain

import "time"

// ReservationStats агрегированная статистика бронирований за период
type ReservationStats struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	Total     int
	Pending   int
	Confirmed int
	Completed int
	Cancelled int

	// Revenue сумма цен бронирований за период без учёта отменённых
	Revenue float64
}
