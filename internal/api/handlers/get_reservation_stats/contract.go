package get_reservation_stats

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	Stats(ctx context.Context, start, end time.Time) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
