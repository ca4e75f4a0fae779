package domain

// Default scheduling values
const (
	// DefaultDurationMinutes длительность по умолчанию, когда длительность
	// формулы не найдена или не парсится
	DefaultDurationMinutes = 60

	// SlotStepMinutes шаг сетки слотов в календаре бронирования
	SlotStepMinutes = 30
)

// Business hours (рабочие часы мойки)
const (
	OpeningTime = "09:00"
	// LastSlotTime последний бронируемый слот дня (включительно)
	LastSlotTime = "18:30"

	LunchBreakStart = "12:30"
	LunchBreakEnd   = "13:30"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxCommentsLength максимальная длина комментария к бронированию
const MaxCommentsLength = 1000
