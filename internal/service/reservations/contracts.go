package reservations

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time, excludeID *int64) ([]*domain.Reservation, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
	DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error)
	StatsByPeriod(ctx context.Context, start, end time.Time) (*domain.ReservationStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
