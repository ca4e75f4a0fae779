package scheduling

import (
	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/types"
)

// Slot один бронируемый получасовой слот дня
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// GenerateDaySlots строит сетку получасовых слотов рабочего дня
// (09:00 - 18:30 включительно, обеденный перерыв 12:30-13:30 исключён)
// и помечает доступность каждого слота для услуги длительностью candidateDuration минут.
//
// Занятость считается по 30-минутным под-слотам: каждое активное бронирование
// раскладывается на под-слоты своей длительности (resolveDuration), кандидат
// доступен, только если свободны ВСЕ под-слоты его собственной длительности.
//
// Расчёт справочный: авторитетной остаётся проверка Checker.CheckConflict
// в момент создания брони.
func GenerateDaySlots(
	candidateDuration int,
	reservations []*domain.Reservation,
	resolveDuration func(r *domain.Reservation) int,
) []Slot {
	grid := dayGrid()

	// Раскладываем занятые интервалы на 30-минутные под-слоты
	occupied := make(map[int]bool)
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}

		start, err := r.StartTime.Minutes()
		if err != nil {
			continue
		}

		duration := resolveDuration(r)
		for m := start; m < start+duration; m += domain.SlotStepMinutes {
			occupied[m] = true
		}
	}

	slots := make([]Slot, 0, len(grid))
	for _, label := range grid {
		start, err := label.Minutes()
		if err != nil {
			continue
		}

		available := true
		for m := start; m < start+candidateDuration; m += domain.SlotStepMinutes {
			if occupied[m] {
				available = false
				break
			}
		}

		slots = append(slots, Slot{
			StartTime: label,
			Available: available,
		})
	}

	return slots
}

// dayGrid возвращает получасовые метки рабочего дня без обеденного перерыва
func dayGrid() []types.TimeString {
	open := types.TimeString(domain.OpeningTime)
	last := types.TimeString(domain.LastSlotTime)
	lunchStart := types.TimeString(domain.LunchBreakStart)
	lunchEnd := types.TimeString(domain.LunchBreakEnd)

	grid := make([]types.TimeString, 0, 20)
	current := open

	for !current.IsAfter(last) {
		// Обеденные слоты {12:30, 13:00, 13:30} не бронируются
		inLunch := !current.IsBefore(lunchStart) && !current.IsAfter(lunchEnd)
		if !inLunch {
			grid = append(grid, current)
		}

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return grid
}
