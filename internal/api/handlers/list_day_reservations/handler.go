package list_day_reservations

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

// Handle GET /api/v1/reservations?date=
// Возвращает только активные брони дня: отменённые в календаре не показываются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to fetch reservations for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - date=%s total=%d", rawDate, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
