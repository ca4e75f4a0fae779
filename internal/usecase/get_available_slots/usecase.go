package get_available_slots

import (
	"context"
	"fmt"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
)

// UseCase use case расчёта доступных слотов дня
//
// Результат справочный, для подсветки сетки на фронте: авторитетной остаётся
// проверка пересечений в момент создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	resolver        DurationResolver
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resolver DurationResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resolver:        resolver,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, category=%s, formula=%q",
		req.Date.Format(domain.DateFormat), req.VehicleCategory, req.Formula)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// Длительность кандидата: ошибки резолвера деградируют до дефолта внутри
	duration := uc.resolver.ResolveDuration(ctx, req.VehicleCategory, req.Formula)

	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	slots := scheduling.GenerateDaySlots(duration, reservations, func(r *domain.Reservation) int {
		return uc.resolver.ResolveDuration(ctx, r.VehicleCategory, r.Formula)
	})

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots built (duration=%d min, %d reservations)",
		req.Date.Format(domain.DateFormat), len(slots), duration, len(reservations))

	return fromSlots(req, duration, slots), nil
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Formula == "" {
		return fmt.Errorf("%w: formula is required", ErrInvalidInput)
	}
	return nil
}
