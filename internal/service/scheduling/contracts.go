package scheduling

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
)

// FormulaRepository интерфейс репозитория формул
type FormulaRepository interface {
	GetByCategoryAndName(ctx context.Context, category domain.VehicleCategory, name string) (*domain.Formula, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByDate возвращает активные бронирования на дату, отсортированные по времени начала
	GetByDate(ctx context.Context, date time.Time, excludeID *int64) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
