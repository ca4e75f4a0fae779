package purge_reservations

import (
	"context"

	"github.com/lavexpress/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	PurgeMonths(ctx context.Context, from, to string) (*models.PurgeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
