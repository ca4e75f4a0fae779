package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavexpress/booking-service/internal/domain"
	reservationRepo "github.com/lavexpress/booking-service/internal/infra/storage/reservation"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
	"github.com/lavexpress/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	items map[int64]*domain.Reservation
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeRepo) Update(_ context.Context, res *domain.Reservation) error {
	if _, ok := r.items[res.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	copied := *res
	r.items[res.ID] = &copied
	return nil
}

// fakeChecker все брони 60 минут
type fakeChecker struct {
	repo *fakeRepo
}

func (c *fakeChecker) CheckConflict(
	_ context.Context,
	date time.Time,
	startTime types.TimeString,
	_ domain.VehicleCategory,
	_ string,
	excludeID *int64,
) (*scheduling.CheckResult, error) {
	candStart, err := startTime.Minutes()
	if err != nil {
		return nil, err
	}

	for _, r := range c.repo.items {
		if !r.Date.Equal(date) || !r.IsActive() {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}

		existingStart, err := r.StartTime.Minutes()
		if err != nil {
			continue
		}

		if candStart < existingStart+60 && candStart+60 > existingStart {
			return &scheduling.CheckResult{Conflict: true, Conflicting: r}, nil
		}
	}

	return &scheduling.CheckResult{Conflict: false}, nil
}

func testDate() time.Time {
	return time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
}

func storedReservation(id int64, start types.TimeString) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		FirstName:       "Marie",
		LastName:        "Dupont",
		Email:           "marie.dupont@example.fr",
		Phone:           "0612345678",
		Address:         "12 rue de la République, Lyon",
		VehicleCategory: domain.CategoryCitadine,
		CarBrand:        "Renault",
		Formula:         "Intégral",
		Price:           89,
		Date:            testDate(),
		StartTime:       start,
		Status:          domain.StatusConfirmed,
	}
}

func requestFor(res *domain.Reservation) *Request {
	return &Request{
		ID:              res.ID,
		FirstName:       res.FirstName,
		LastName:        res.LastName,
		Email:           res.Email,
		Phone:           res.Phone,
		Address:         res.Address,
		VehicleCategory: res.VehicleCategory,
		CarBrand:        res.CarBrand,
		Formula:         res.Formula,
		Price:           res.Price,
		Date:            res.Date,
		StartTime:       res.StartTime,
	}
}

func newTestUseCase(items ...*domain.Reservation) (*UseCase, *fakeRepo) {
	repo := &fakeRepo{items: make(map[int64]*domain.Reservation)}
	for _, r := range items {
		repo.items[r.ID] = r
	}
	return NewUseCase(repo, &fakeChecker{repo: repo}, fakeTxManager{}, noopLogger{}), repo
}

func TestUseCase_Execute_UpdatesFields(t *testing.T) {
	uc, repo := newTestUseCase(storedReservation(5, "10:00"))

	req := requestFor(repo.items[5])
	req.Phone = "0698765432"
	req.Price = 99

	result, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "0698765432", result.Phone)
	assert.Equal(t, 99.0, result.Price)
	// Статус полным обновлением не меняется
	assert.Equal(t, domain.StatusConfirmed, result.Status)
	assert.Equal(t, "0698765432", repo.items[5].Phone)
}

func TestUseCase_Execute_SameSlotDoesNotConflictWithItself(t *testing.T) {
	uc, repo := newTestUseCase(storedReservation(5, "10:00"))

	// Перенос на прежнее время: без исключения собственного ID
	// бронь конфликтовала бы сама с собой
	req := requestFor(repo.items[5])

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestUseCase_Execute_ConflictWithOtherReservation(t *testing.T) {
	uc, repo := newTestUseCase(
		storedReservation(5, "10:00"),
		storedReservation(6, "14:00"),
	)

	// Перенос брони 5 внутрь слота брони 6
	req := requestFor(repo.items[5])
	req.StartTime = "14:30"

	_, err := uc.Execute(context.Background(), req)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(6), conflictErr.ReservationID)

	// Бронь не изменилась
	assert.Equal(t, types.TimeString("10:00"), repo.items[5].StartTime)
}

func TestUseCase_Execute_CancelledReservationSkipsConflictCheck(t *testing.T) {
	cancelled := storedReservation(5, "10:00")
	cancelled.Status = domain.StatusCancelled
	uc, repo := newTestUseCase(cancelled, storedReservation(6, "14:00"))

	// Отменённая бронь редактируется даже поверх чужого слота
	req := requestFor(repo.items[5])
	req.StartTime = "14:00"

	result, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Status)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	req := requestFor(storedReservation(42, "10:00"))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc, repo := newTestUseCase(storedReservation(5, "10:00"))

	req := requestFor(repo.items[5])
	req.Email = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
