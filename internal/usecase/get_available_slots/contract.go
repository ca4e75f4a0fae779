package get_available_slots

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByDate(ctx context.Context, date time.Time, excludeID *int64) ([]*domain.Reservation, error)
}

// DurationResolver интерфейс резолвера длительности формулы
type DurationResolver interface {
	ResolveDuration(ctx context.Context, category domain.VehicleCategory, formulaName string) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
