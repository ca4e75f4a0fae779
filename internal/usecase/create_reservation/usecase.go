package create_reservation

import (
	"context"
	"fmt"

	"github.com/lavexpress/booking-service/internal/domain"
)

// UseCase use case создания бронирования
//
// Проверка пересечений и вставка выполняются в одной SERIALIZABLE транзакции:
// два конкурентных запроса на пересекающиеся слоты не смогут оба пройти
// проверку и оба вставиться
type UseCase struct {
	reservationRepo ReservationRepository
	checker         ConflictChecker
	txManager       TransactionManager
	mailer          Mailer
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		txManager:       txManager,
		mailer:          mailer,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: category=%s, formula=%q, date=%s, time=%s",
		req.VehicleCategory, req.Formula, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	reservation := buildReservation(req)

	// 2. Проверка пересечений + вставка в одной транзакции
	var result *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		check, err := uc.checker.CheckConflict(
			txCtx,
			req.Date,
			req.StartTime,
			req.VehicleCategory,
			req.Formula,
			nil,
		)
		if err != nil {
			uc.logger.Error("CreateReservation: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if check.Conflict {
			uc.logger.Warn("CreateReservation: slot taken, conflicting reservation id=%d at %s",
				check.Conflicting.ID, check.Conflicting.StartTime)
			return &ConflictError{
				ReservationID: check.Conflicting.ID,
				StartTime:     check.Conflicting.StartTime,
				Formula:       check.Conflicting.Formula,
			}
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: reservation id=%d created (status=%s)", result.ID, result.Status)

	// 3. Уведомляем персонал best-effort: ошибка почты не откатывает бронь
	go uc.notifyStaff(result)

	return fromDomain(result), nil
}

// buildReservation собирает доменную модель с дефолтами
// Статус принудительно pending вне зависимости от входных данных
func buildReservation(req *Request) *domain.Reservation {
	price := 0.0
	if req.Price != nil {
		price = *req.Price
	}

	comments := ""
	if req.Comments != nil {
		comments = *req.Comments
	}

	newsletter := false
	if req.Newsletter != nil {
		newsletter = *req.Newsletter
	}

	options := req.Options
	if options == nil {
		options = domain.Options{}
	}

	return &domain.Reservation{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		VehicleCategory: req.VehicleCategory,
		CarBrand:        req.CarBrand,
		Formula:         req.Formula,
		Price:           price,
		Options:         options,
		Date:            req.Date,
		StartTime:       req.StartTime,
		Status:          domain.StatusPending,
		Comments:        comments,
		Newsletter:      newsletter,
	}
}

func (uc *UseCase) notifyStaff(res *domain.Reservation) {
	if err := uc.mailer.NotifyNewReservation(res); err != nil {
		uc.logger.Warn("CreateReservation: staff notification failed for reservation id=%d: %v", res.ID, err)
	}
}
