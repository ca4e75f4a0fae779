package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavexpress/booking-service/internal/domain"
	reservationRepo "github.com/lavexpress/booking-service/internal/infra/storage/reservation"
	"github.com/lavexpress/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	items map[int64]*domain.Reservation

	statusUpdates map[int64]domain.ReservationStatus
	deletedRange  *domain.WeekRange
	deletedCount  int64
}

func newFakeRepo(items ...*domain.Reservation) *fakeRepo {
	repo := &fakeRepo{
		items:         make(map[int64]*domain.Reservation),
		statusUpdates: make(map[int64]domain.ReservationStatus),
	}
	for _, r := range items {
		repo.items[r.ID] = r
	}
	return repo
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (r *fakeRepo) GetByDate(_ context.Context, date time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, res := range r.items {
		if res.Date.Equal(date) && res.IsActive() {
			result = append(result, res)
		}
	}
	return result, nil
}

func (r *fakeRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, res := range r.items {
		if !res.Date.Before(start) && !res.Date.After(end) && res.IsActive() {
			result = append(result, res)
		}
	}
	return result, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	res, ok := r.items[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	r.statusUpdates[id] = status
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) DeleteByDateRange(_ context.Context, start, end time.Time) (int64, error) {
	r.deletedRange = &domain.WeekRange{Start: start, End: end}
	var count int64
	for id, res := range r.items {
		if !res.Date.Before(start) && !res.Date.After(end) {
			delete(r.items, id)
			count++
		}
	}
	r.deletedCount = count
	return count, nil
}

func (r *fakeRepo) StatsByPeriod(_ context.Context, start, end time.Time) (*domain.ReservationStats, error) {
	stats := &domain.ReservationStats{PeriodStart: start, PeriodEnd: end}
	for _, res := range r.items {
		if res.Date.Before(start) || res.Date.After(end) {
			continue
		}
		stats.Total++
		switch res.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
		if res.Status != domain.StatusCancelled {
			stats.Revenue += res.Price
		}
	}
	return stats, nil
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func reservation(id int64, d int, start string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		FirstName: "Marie",
		LastName:  "Dupont",
		Formula:   "Intégral",
		Price:     89,
		Date:      day(d),
		StartTime: types.TimeString(start),
		Status:    status,
	}
}

func TestService_GetWeek(t *testing.T) {
	repo := newFakeRepo(
		reservation(1, 1, "10:00", domain.StatusPending),    // понедельник
		reservation(2, 7, "11:00", domain.StatusConfirmed),  // воскресенье той же недели
		reservation(3, 8, "10:00", domain.StatusPending),    // следующий понедельник
		reservation(4, 3, "14:00", domain.StatusCancelled),  // отменённая не видна
	)
	svc := NewService(repo, noopLogger{})

	// Среда 3 января принадлежит неделе 1 - 7 января
	resp, err := svc.GetWeek(context.Background(), day(3))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.WeekStart)
	assert.Equal(t, "2024-01-07", resp.WeekEnd)
	assert.Len(t, resp.Reservations, 2)
}

func TestService_GetWeek_SundayStaysInPreviousWeek(t *testing.T) {
	repo := newFakeRepo(reservation(1, 1, "10:00", domain.StatusPending))
	svc := NewService(repo, noopLogger{})

	// Воскресенье 7 января относится к неделе, начавшейся 1 января
	resp, err := svc.GetWeek(context.Background(), day(7))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.WeekStart)
	assert.Len(t, resp.Reservations, 1)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := newFakeRepo(reservation(1, 1, "10:00", domain.StatusPending))
	svc := NewService(repo, noopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.UpdateStatus(ctx, 1, "confirmed"))
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[1])

	// Повторная установка того же статуса допустима
	require.NoError(t, svc.UpdateStatus(ctx, 1, "confirmed"))

	err := svc.UpdateStatus(ctx, 1, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(ctx, 42, "confirmed")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepo(reservation(1, 1, "10:00", domain.StatusPending))
	svc := NewService(repo, noopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrReservationNotFound)
}

func TestService_PurgeMonths(t *testing.T) {
	repo := newFakeRepo(
		reservation(1, 5, "10:00", domain.StatusCompleted),
		reservation(2, 20, "11:00", domain.StatusCancelled),
		reservation(3, 31, "12:00", domain.StatusPending),
	)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.PurgeMonths(context.Background(), "2024-01", "2024-01")
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Deleted)
	require.NotNil(t, repo.deletedRange)
	// Диапазон покрывает весь январь включительно
	assert.Equal(t, day(1), repo.deletedRange.Start)
	assert.Equal(t, day(31), repo.deletedRange.End)
}

func TestService_PurgeMonths_InvalidPeriod(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})
	ctx := context.Background()

	_, err := svc.PurgeMonths(ctx, "january", "2024-02")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.PurgeMonths(ctx, "2024-03", "2024-01")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_Stats(t *testing.T) {
	repo := newFakeRepo(
		reservation(1, 5, "10:00", domain.StatusCompleted),
		reservation(2, 6, "11:00", domain.StatusCancelled),
		reservation(3, 7, "12:00", domain.StatusPending),
	)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Stats(context.Background(), day(1), day(31))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Completed)
	assert.Equal(t, 1, resp.Cancelled)
	assert.Equal(t, 1, resp.Pending)
	// Отменённые брони в выручку не входят
	assert.Equal(t, 178.0, resp.Revenue)
}

func TestService_Stats_InvalidPeriod(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.Stats(context.Background(), day(31), day(1))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
