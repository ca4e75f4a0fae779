package get_available_slots

import (
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
)

// Request модель запроса доступных слотов на день
// Категория и формула определяют длительность услуги-кандидата
type Request struct {
	Date            time.Time
	VehicleCategory domain.VehicleCategory
	Formula         string
}

// SlotModel один слот в ответе
type SlotModel struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// Response модель ответа со слотами дня
type Response struct {
	Date            string      `json:"date"`
	VehicleCategory string      `json:"vehicleCategory"`
	Formula         string      `json:"formula"`
	DurationMinutes int         `json:"durationMinutes"`
	Slots           []SlotModel `json:"slots"`
}

func fromSlots(req *Request, duration int, slots []scheduling.Slot) *Response {
	models := make([]SlotModel, 0, len(slots))
	for _, s := range slots {
		models = append(models, SlotModel{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		})
	}

	return &Response{
		Date:            req.Date.Format(domain.DateFormat),
		VehicleCategory: string(req.VehicleCategory),
		Formula:         req.Formula,
		DurationMinutes: duration,
		Slots:           models,
	}
}
