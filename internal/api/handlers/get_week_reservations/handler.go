package get_week_reservations

import (
	"net/http"
	"time"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	"github.com/lavexpress/booking-service/internal/domain"
)

const msgInvalidDate = "format de date invalide, attendu YYYY-MM-DD"

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/week?date=
// Дата может быть любым днём недели, границы недели вернутся в ответе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /reservations/week - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetWeek(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reservations/week - Failed to fetch week of %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/week - week %s - %s, %d reservations",
		result.WeekStart, result.WeekEnd, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
