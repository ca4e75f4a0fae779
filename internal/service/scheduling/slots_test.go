package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/types"
)

func slotMap(slots []Slot) map[types.TimeString]bool {
	m := make(map[types.TimeString]bool, len(slots))
	for _, s := range slots {
		m[s.StartTime] = s.Available
	}
	return m
}

func TestGenerateDaySlots_Grid(t *testing.T) {
	slots := GenerateDaySlots(30, nil, func(r *domain.Reservation) int { return 30 })

	// 09:00-18:30 это 20 получасовых меток, минус 3 обеденные
	require.Len(t, slots, 17)

	m := slotMap(slots)
	assert.Contains(t, m, types.TimeString("09:00"))
	assert.Contains(t, m, types.TimeString("12:00"))
	assert.Contains(t, m, types.TimeString("14:00"))
	assert.Contains(t, m, types.TimeString("18:30"))

	// Обеденный перерыв не бронируется
	assert.NotContains(t, m, types.TimeString("12:30"))
	assert.NotContains(t, m, types.TimeString("13:00"))
	assert.NotContains(t, m, types.TimeString("13:30"))

	// Пустой день полностью свободен
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestGenerateDaySlots_OccupiedSubSlots(t *testing.T) {
	// Бронь на 90 минут с 10:00 занимает под-слоты 10:00, 10:30, 11:00
	reservations := []*domain.Reservation{
		{
			ID:        1,
			Formula:   "Intégral",
			StartTime: "10:00",
			Status:    domain.StatusConfirmed,
		},
	}

	slots := GenerateDaySlots(30, reservations, func(r *domain.Reservation) int { return 90 })
	m := slotMap(slots)

	assert.True(t, m["09:30"])
	assert.False(t, m["10:00"])
	assert.False(t, m["10:30"])
	assert.False(t, m["11:00"])
	assert.True(t, m["11:30"])
}

func TestGenerateDaySlots_CandidateDurationBlocksPartialFit(t *testing.T) {
	reservations := []*domain.Reservation{
		{
			ID:        1,
			Formula:   "Express",
			StartTime: "11:00",
			Status:    domain.StatusPending,
		},
	}

	// Кандидату на 90 минут нужны ТРИ свободных под-слота подряд:
	// старт в 10:00 или 10:30 упирается в занятый 11:00
	slots := GenerateDaySlots(90, reservations, func(r *domain.Reservation) int { return 30 })
	m := slotMap(slots)

	assert.True(t, m["09:00"])
	assert.False(t, m["10:00"])
	assert.False(t, m["10:30"])
	assert.False(t, m["11:00"])
	assert.True(t, m["11:30"])
}

func TestGenerateDaySlots_CancelledReservationFreesSlot(t *testing.T) {
	reservations := []*domain.Reservation{
		{
			ID:        1,
			Formula:   "Intégral",
			StartTime: "10:00",
			Status:    domain.StatusCancelled,
		},
	}

	slots := GenerateDaySlots(30, reservations, func(r *domain.Reservation) int { return 90 })
	m := slotMap(slots)

	assert.True(t, m["10:00"])
	assert.True(t, m["10:30"])
	assert.True(t, m["11:00"])
}
