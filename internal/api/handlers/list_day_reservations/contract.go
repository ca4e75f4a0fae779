package list_day_reservations

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
