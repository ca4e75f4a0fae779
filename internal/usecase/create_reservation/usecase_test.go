package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
	"github.com/lavexpress/booking-service/pkg/ptr"
	"github.com/lavexpress/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager выполняет callback без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo хранит бронирования в памяти и раздает ID по порядку
type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*domain.Reservation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, items: make(map[int64]*domain.Reservation)}
}

func (r *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *res
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.items[created.ID] = &created
	return &created, nil
}

func (r *fakeRepo) setStatus(id int64, status domain.ReservationStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id].Status = status
}

// fakeChecker проверяет пересечения по содержимому fakeRepo
// Все брони считаются 60-минутными
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

	c.repo.mu.Lock()
	defer c.repo.mu.Unlock()

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

// recordingMailer запоминает уведомления для проверки
type recordingMailer struct {
	mu       sync.Mutex
	notified []int64
}

func (m *recordingMailer) NotifyNewReservation(res *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notified = append(m.notified, res.ID)
	return nil
}

func validRequest() *Request {
	return &Request{
		FirstName:       "Marie",
		LastName:        "Dupont",
		Email:           "marie.dupont@example.fr",
		Phone:           "0612345678",
		Address:         "12 rue de la République, Lyon",
		VehicleCategory: domain.CategoryCitadine,
		CarBrand:        "Renault",
		Formula:         "Intégral",
		Date:            time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
	}
}

func newTestUseCase() (*UseCase, *fakeRepo, *recordingMailer) {
	repo := newFakeRepo()
	mailer := &recordingMailer{}
	uc := NewUseCase(repo, &fakeChecker{repo: repo}, fakeTxManager{}, mailer, noopLogger{})
	return uc, repo, mailer
}

func TestUseCase_Execute_CreatesPendingReservation(t *testing.T) {
	uc, _, _ := newTestUseCase()

	req := validRequest()
	req.Price = ptr.Ptr(89.0)
	req.Comments = ptr.Ptr("Tâches sur les sièges arrière")
	req.Newsletter = ptr.Ptr(true)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 89.0, resp.Price)
	assert.Equal(t, "Tâches sur les sièges arrière", resp.Comments)
	assert.True(t, resp.Newsletter)
}

func TestUseCase_Execute_AppliesDefaults(t *testing.T) {
	uc, _, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Price)
	assert.Equal(t, "", resp.Comments)
	assert.False(t, resp.Newsletter)
	assert.NotNil(t, resp.Options)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc, _, _ := newTestUseCase()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing first name", mutate: func(r *Request) { r.FirstName = " " }},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *Request) { r.Email = "marie.example.fr" }},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "unknown category", mutate: func(r *Request) { r.VehicleCategory = "camion" }},
		{name: "missing formula", mutate: func(r *Request) { r.Formula = "" }},
		{name: "negative price", mutate: func(r *Request) { r.Price = ptr.Ptr(-1.0) }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_ConflictRejected(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// Второй запрос на пересекающийся слот отклоняется с данными конфликта
	second := validRequest()
	second.FirstName = "Paul"
	second.StartTime = "10:30"

	_, err = uc.Execute(ctx, second)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, first.ID, conflictErr.ReservationID)
	assert.Equal(t, types.TimeString("10:00"), conflictErr.StartTime)
	assert.Equal(t, "Intégral", conflictErr.Formula)
}

func TestUseCase_Execute_CancelledReservationFreesSlot(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.FirstName = "Paul"
	_, err = uc.Execute(ctx, second)
	require.Error(t, err)

	// После отмены первой брони тот же слот снова доступен
	repo.setStatus(first.ID, domain.StatusCancelled)

	resp, err := uc.Execute(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestUseCase_Execute_NotifiesStaff(t *testing.T) {
	uc, _, mailer := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Уведомление уходит в отдельной горутине
	assert.Eventually(t, func() bool {
		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		return len(mailer.notified) == 1 && mailer.notified[0] == resp.ID
	}, time.Second, 10*time.Millisecond)
}
