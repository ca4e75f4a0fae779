package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/types"
)

// CheckResult результат проверки слота на пересечение
type CheckResult struct {
	Conflict bool
	// Conflicting первое найденное пересекающееся бронирование (если есть)
	Conflicting *domain.Reservation
	Message     string
}

// Checker проверяет кандидата на пересечение с активными бронированиями дня
type Checker struct {
	reservationRepo ReservationRepository
	resolver        *Resolver
	logger          Logger
}

// NewChecker создает проверку пересечений
func NewChecker(reservationRepo ReservationRepository, resolver *Resolver, logger Logger) *Checker {
	return &Checker{
		reservationRepo: reservationRepo,
		resolver:        resolver,
		logger:          logger,
	}
}

// CheckConflict проверяет, пересекается ли интервал [start, start+duration)
// кандидата с каким-либо активным бронированием на ту же дату.
//
// Интервалы полуоткрытые: бронирования "впритык" (одно заканчивается ровно
// когда начинается другое) пересечением НЕ считаются.
//
// excludeID исключает бронирование из проверки - нужно при редактировании,
// чтобы бронь не конфликтовала сама с собой.
//
// Возвращается первое найденное пересечение в порядке выдачи хранилища.
func (c *Checker) CheckConflict(
	ctx context.Context,
	date time.Time,
	startTime types.TimeString,
	category domain.VehicleCategory,
	formulaName string,
	excludeID *int64,
) (*CheckResult, error) {
	candidateStart, err := startTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	duration := c.resolver.ResolveDuration(ctx, category, formulaName)
	candidateEnd := candidateStart + duration

	existing, err := c.reservationRepo.GetByDate(ctx, date, excludeID)
	if err != nil {
		c.logger.Error("CheckConflict: failed to load reservations for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load reservations: %v", ErrInternal, err)
	}

	for _, r := range existing {
		// Отменённые бронирования слот не занимают
		if !r.IsActive() {
			continue
		}

		existingStart, err := r.StartTime.Minutes()
		if err != nil {
			c.logger.Warn("CheckConflict: reservation id=%d has invalid start time %q, skipping",
				r.ID, r.StartTime)
			continue
		}

		existingDuration := c.resolver.ResolveDuration(ctx, r.VehicleCategory, r.Formula)
		existingEnd := existingStart + existingDuration

		if candidateStart < existingEnd && candidateEnd > existingStart {
			return &CheckResult{
				Conflict:    true,
				Conflicting: r,
				Message: fmt.Sprintf("slot overlaps reservation at %s (%s)",
					r.StartTime, r.Formula),
			}, nil
		}
	}

	return &CheckResult{
		Conflict: false,
		Message:  "slot is available",
	}, nil
}
