package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/ptr"
	"github.com/lavexpress/booking-service/pkg/types"
)

func testDate() time.Time {
	return time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
}

func newTestChecker(reservations []*domain.Reservation) *Checker {
	formulas := newFakeFormulaRepo(
		&domain.Formula{Category: domain.CategoryCitadine, Name: "Intégral", Duration: "1h30"},
		&domain.Formula{Category: domain.CategoryCitadine, Name: "Express", Duration: "30"},
		&domain.Formula{Category: domain.CategorySUV, Name: "Intérieur", Duration: "2h"},
	)
	resolver := NewResolver(formulas, noopLogger{})
	repo := &fakeReservationRepo{reservations: reservations}
	return NewChecker(repo, resolver, noopLogger{})
}

func TestChecker_CheckConflict_Overlap(t *testing.T) {
	ctx := context.Background()

	// Intégral 10:00 занимает [10:00, 11:30)
	existing := &domain.Reservation{
		ID:              1,
		VehicleCategory: domain.CategoryCitadine,
		Formula:         "Intégral",
		Date:            testDate(),
		StartTime:       "10:00",
		Status:          domain.StatusConfirmed,
	}
	checker := newTestChecker([]*domain.Reservation{existing})

	tests := []struct {
		name         string
		startTime    types.TimeString
		formula      string
		wantConflict bool
	}{
		{name: "candidate inside existing", startTime: "10:30", formula: "Express", wantConflict: true},
		{name: "candidate overlaps tail", startTime: "11:00", formula: "Intégral", wantConflict: true},
		{name: "candidate covers existing", startTime: "09:30", formula: "Intégral", wantConflict: true},
		{name: "back to back after", startTime: "11:30", formula: "Express", wantConflict: false},
		{name: "back to back before", startTime: "09:30", formula: "Express", wantConflict: false},
		{name: "far away", startTime: "15:00", formula: "Intégral", wantConflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.CheckConflict(ctx, testDate(), tt.startTime, domain.CategoryCitadine, tt.formula, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantConflict, result.Conflict)
			if tt.wantConflict {
				require.NotNil(t, result.Conflicting)
				assert.Equal(t, existing.ID, result.Conflicting.ID)
				assert.Equal(t, existing.StartTime, result.Conflicting.StartTime)
				assert.Equal(t, existing.Formula, result.Conflicting.Formula)
			}
		})
	}
}

func TestChecker_CheckConflict_CancelledIgnored(t *testing.T) {
	ctx := context.Background()

	cancelled := &domain.Reservation{
		ID:              7,
		VehicleCategory: domain.CategoryCitadine,
		Formula:         "Intégral",
		Date:            testDate(),
		StartTime:       "10:00",
		Status:          domain.StatusCancelled,
	}
	checker := newTestChecker([]*domain.Reservation{cancelled})

	result, err := checker.CheckConflict(ctx, testDate(), "10:00", domain.CategoryCitadine, "Intégral", nil)
	require.NoError(t, err)
	assert.False(t, result.Conflict)
}

func TestChecker_CheckConflict_ExcludeSelf(t *testing.T) {
	ctx := context.Background()

	existing := &domain.Reservation{
		ID:              5,
		VehicleCategory: domain.CategoryCitadine,
		Formula:         "Intégral",
		Date:            testDate(),
		StartTime:       "10:00",
		Status:          domain.StatusPending,
	}
	checker := newTestChecker([]*domain.Reservation{existing})

	// Без исключения бронь конфликтует со своим же слотом
	result, err := checker.CheckConflict(ctx, testDate(), "10:00", domain.CategoryCitadine, "Intégral", nil)
	require.NoError(t, err)
	assert.True(t, result.Conflict)

	// С исключением собственного ID тот же слот свободен
	result, err = checker.CheckConflict(ctx, testDate(), "10:00", domain.CategoryCitadine, "Intégral", ptr.Ptr(int64(5)))
	require.NoError(t, err)
	assert.False(t, result.Conflict)
}

func TestChecker_CheckConflict_UnknownFormulaUsesDefaultDuration(t *testing.T) {
	ctx := context.Background()

	// Неизвестная формула резолвится в 60 минут: [10:00, 11:00)
	existing := &domain.Reservation{
		ID:              2,
		VehicleCategory: domain.CategoryCitadine,
		Formula:         "Intégral, Express",
		Date:            testDate(),
		StartTime:       "10:00",
		Status:          domain.StatusPending,
	}
	checker := newTestChecker([]*domain.Reservation{existing})

	result, err := checker.CheckConflict(ctx, testDate(), "11:00", domain.CategoryCitadine, "Express", nil)
	require.NoError(t, err)
	assert.False(t, result.Conflict)

	result, err = checker.CheckConflict(ctx, testDate(), "10:30", domain.CategoryCitadine, "Express", nil)
	require.NoError(t, err)
	assert.True(t, result.Conflict)
}

func TestChecker_CheckConflict_InvalidStartTime(t *testing.T) {
	checker := newTestChecker(nil)

	_, err := checker.CheckConflict(context.Background(), testDate(), "25:99", domain.CategoryCitadine, "Intégral", nil)
	assert.ErrorIs(t, err, ErrInvalidStartTime)
}
