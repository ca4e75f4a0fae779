package get_week_reservations

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	GetWeek(ctx context.Context, anyDateInWeek time.Time) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
