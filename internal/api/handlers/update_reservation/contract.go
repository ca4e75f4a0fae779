package update_reservation

import (
	"context"

	"github.com/lavexpress/booking-service/internal/domain"
	updateReservation "github.com/lavexpress/booking-service/internal/usecase/update_reservation"
)

type UpdateReservationUseCase interface {
	Execute(ctx context.Context, req *updateReservation.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
