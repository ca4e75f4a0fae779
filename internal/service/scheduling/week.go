package scheduling

import (
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
)

// WeekBounds возвращает границы недели (понедельник - воскресенье),
// содержащей указанную дату.
//
// Воскресенье считается седьмым днём ПРЕДЫДУЩЕЙ недели: для него понедельник
// находится на 6 дней раньше. Для остальных дней понедельник = дата - (день недели - 1).
//
// Границы возвращаются в локальном календаре (время обнулено), чтобы
// сериализация даты не сдвигалась при конвертации в UTC около полуночи.
func WeekBounds(date time.Time) domain.WeekRange {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var offset int
	if dateOnly.Weekday() == time.Sunday {
		offset = 6
	} else {
		offset = int(dateOnly.Weekday()) - 1
	}

	start := dateOnly.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)

	return domain.WeekRange{Start: start, End: end}
}
