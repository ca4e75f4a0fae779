package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (r *fakeRepo) GetByDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.Reservation, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.reservations, nil
}

// fakeResolver отдаёт фиксированную длительность по имени формулы
type fakeResolver struct {
	durations map[string]int
}

func (r *fakeResolver) ResolveDuration(_ context.Context, _ domain.VehicleCategory, formulaName string) int {
	if d, ok := r.durations[formulaName]; ok {
		return d
	}
	return domain.DefaultDurationMinutes
}

func testDate() time.Time {
	return time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	uc := NewUseCase(
		&fakeRepo{},
		&fakeResolver{durations: map[string]int{"Intégral": 90}},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		VehicleCategory: domain.CategoryCitadine,
		Formula:         "Intégral",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-16", resp.Date)
	assert.Equal(t, 90, resp.DurationMinutes)
	// 20 позиций сетки минус 3 слота обеденного перерыва
	assert.Len(t, resp.Slots, 17)
	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestUseCase_Execute_OccupiedSlotsBlocked(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		{
			ID:              1,
			VehicleCategory: domain.CategoryCitadine,
			Formula:         "Intégral",
			Date:            testDate(),
			StartTime:       types.TimeString("10:00"),
			Status:          domain.StatusConfirmed,
		},
	}}
	uc := NewUseCase(
		repo,
		&fakeResolver{durations: map[string]int{"Intégral": 90, "Express": 30}},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		VehicleCategory: domain.CategoryCitadine,
		Formula:         "Express",
	})
	require.NoError(t, err)

	available := make(map[string]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		available[s.StartTime] = s.Available
	}

	// Бронь 10:00 на 1h30 занимает подслоты 10:00, 10:30 и 11:00
	assert.False(t, available["10:00"])
	assert.False(t, available["10:30"])
	assert.False(t, available["11:00"])
	assert.True(t, available["09:30"])
	assert.True(t, available["11:30"])
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeResolver{}, noopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Formula: "Intégral"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepoError(t *testing.T) {
	uc := NewUseCase(
		&fakeRepo{err: errors.New("connection refused")},
		&fakeResolver{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		VehicleCategory: domain.CategoryCitadine,
		Formula:         "Intégral",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
