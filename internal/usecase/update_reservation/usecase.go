package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	reservationRepo "github.com/lavexpress/booking-service/internal/infra/storage/reservation"
	"github.com/lavexpress/booking-service/pkg/types"
)

// Request модель запроса на полное обновление бронирования администратором
// Статус не входит: для него есть отдельная операция смены статуса
type Request struct {
	ID int64

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string

	VehicleCategory domain.VehicleCategory
	CarBrand        string
	Formula         string
	Price           float64
	Options         domain.Options

	Date      time.Time
	StartTime types.TimeString

	Comments   string
	Newsletter bool
}

// UseCase use case полного обновления бронирования
// Перенос на другой слот проверяется на пересечения так же, как создание,
// но собственная бронь исключается из проверки - иначе она конфликтовала бы
// сама с собой
type UseCase struct {
	reservationRepo ReservationRepository
	checker         ConflictChecker
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("UpdateReservation: id=%d, date=%s, time=%s",
		req.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to load reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to load reservation: %v", ErrInternal, err)
		}

		// Отменённую бронь можно редактировать без проверки пересечений -
		// слот она не занимает и в проверках не участвует
		if existing.IsActive() {
			check, err := uc.checker.CheckConflict(
				txCtx,
				req.Date,
				req.StartTime,
				req.VehicleCategory,
				req.Formula,
				&req.ID,
			)
			if err != nil {
				uc.logger.Error("UpdateReservation: conflict check failed: %v", err)
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}

			if check.Conflict {
				uc.logger.Warn("UpdateReservation: slot taken, conflicting reservation id=%d at %s",
					check.Conflicting.ID, check.Conflicting.StartTime)
				return &ConflictError{
					ReservationID: check.Conflicting.ID,
					StartTime:     check.Conflicting.StartTime,
					Formula:       check.Conflicting.Formula,
				}
			}
		}

		updated := applyRequest(existing, req)
		if err := uc.reservationRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: reservation id=%d updated", req.ID)
	return result, nil
}

// applyRequest переносит поля запроса на существующую бронь
// Статус и метки времени сохраняются (updated_at обновит репозиторий)
func applyRequest(existing *domain.Reservation, req *Request) *domain.Reservation {
	options := req.Options
	if options == nil {
		options = domain.Options{}
	}

	updated := *existing
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	updated.Email = req.Email
	updated.Phone = req.Phone
	updated.Address = req.Address
	updated.VehicleCategory = req.VehicleCategory
	updated.CarBrand = req.CarBrand
	updated.Formula = req.Formula
	updated.Price = req.Price
	updated.Options = options
	updated.Date = req.Date
	updated.StartTime = req.StartTime
	updated.Comments = req.Comments
	updated.Newsletter = req.Newsletter

	return &updated
}

func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if !req.VehicleCategory.IsValid() {
		return fmt.Errorf("%w: unknown vehicle category %q", ErrInvalidInput, req.VehicleCategory)
	}
	if strings.TrimSpace(req.CarBrand) == "" {
		return fmt.Errorf("%w: carBrand is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Formula) == "" {
		return fmt.Errorf("%w: formula is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if err := req.Options.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	return nil
}
