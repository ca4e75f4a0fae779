package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	reservationRepo "github.com/lavexpress/booking-service/internal/infra/storage/reservation"
	"github.com/lavexpress/booking-service/internal/service/reservations/models"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
)

// monthFormat формат месяца для административной чистки ("YYYY-MM")
const monthFormat = "2006-01"

// Service сервис для работы с бронированиями (чтение, статусы, удаление, статистика)
// Создание и редактирование с проверкой пересечений живут в usecase-слое
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetByDate получает активные бронирования на дату для календаря дня
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByDate: fetching reservations for %s", date.Format(domain.DateFormat))

	list, err := s.reservationRepo.GetByDate(ctx, date, nil)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d reservations for %s", len(list), date.Format(domain.DateFormat))
	return models.FromDomainReservationList(list), nil
}

// GetWeek получает активные бронирования недели, содержащей указанную дату
// Неделя начинается с понедельника; воскресенье относится к предыдущей неделе
// Бронирования отсортированы по дате, затем по времени начала
func (s *Service) GetWeek(ctx context.Context, anyDateInWeek time.Time) (*models.WeekResponse, error) {
	week := scheduling.WeekBounds(anyDateInWeek)

	s.logger.Info("GetWeek: fetching reservations for week %s - %s",
		week.Start.Format(domain.DateFormat), week.End.Format(domain.DateFormat))

	list, err := s.reservationRepo.GetByDateRange(ctx, week.Start, week.End)
	if err != nil {
		s.logger.Error("GetWeek: repository error for week of %s: %v",
			anyDateInWeek.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.ReservationResponse, 0, len(list))
	for _, r := range list {
		responses = append(responses, models.FromDomainReservation(r))
	}

	return &models.WeekResponse{
		WeekStart:    week.Start.Format(domain.DateFormat),
		WeekEnd:      week.End.Format(domain.DateFormat),
		Reservations: responses,
	}, nil
}

// UpdateStatus обновляет статус бронирования
// Установка текущего статуса допустима - изменится только updated_at
func (s *Service) UpdateStatus(ctx context.Context, id int64, statusStr string) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, statusStr)

	status, ok := models.ToDomainStatus(statusStr)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", statusStr, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, statusStr)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%d updated to status=%s", id, status)
	return nil
}

// Delete физически удаляет бронирование (явное действие администратора)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

// PurgeMonths удаляет все бронирования с датой внутри диапазона месяцев
// [from, to] в формате "YYYY-MM" (границы включительно)
func (s *Service) PurgeMonths(ctx context.Context, from, to string) (*models.PurgeResponse, error) {
	s.logger.Info("PurgeMonths: purging reservations from %s to %s", from, to)

	start, err := time.Parse(monthFormat, from)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid from month %q", ErrInvalidPeriod, from)
	}

	toMonth, err := time.Parse(monthFormat, to)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid to month %q", ErrInvalidPeriod, to)
	}

	if toMonth.Before(start) {
		return nil, fmt.Errorf("%w: to month %q is before from month %q", ErrInvalidPeriod, to, from)
	}

	// Последний день месяца to
	end := toMonth.AddDate(0, 1, -1)

	deleted, err := s.reservationRepo.DeleteByDateRange(ctx, start, end)
	if err != nil {
		s.logger.Error("PurgeMonths: repository error for %s - %s: %v", from, to, err)
		return nil, fmt.Errorf("%w: PurgeMonths - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PurgeMonths: deleted %d reservations from %s to %s", deleted, from, to)
	return &models.PurgeResponse{
		From:    from,
		To:      to,
		Deleted: deleted,
	}, nil
}

// Stats считает статистику бронирований за период [start, end]
func (s *Service) Stats(ctx context.Context, start, end time.Time) (*models.StatsResponse, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidPeriod)
	}

	s.logger.Info("Stats: computing stats for %s - %s",
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	stats, err := s.reservationRepo.StatsByPeriod(ctx, start, end)
	if err != nil {
		s.logger.Error("Stats: repository error for period %s - %s: %v",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}
