package update_reservation

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
	"github.com/lavexpress/booking-service/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
}

// ConflictChecker интерфейс проверки слота на пересечение
type ConflictChecker interface {
	CheckConflict(
		ctx context.Context,
		date time.Time,
		startTime types.TimeString,
		category domain.VehicleCategory,
		formulaName string,
		excludeID *int64,
	) (*scheduling.CheckResult, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
