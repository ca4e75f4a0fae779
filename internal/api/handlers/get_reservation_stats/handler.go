package get_reservation_stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	"github.com/lavexpress/booking-service/internal/domain"
	reservationsService "github.com/lavexpress/booking-service/internal/service/reservations"
)

const (
	msgInvalidDate   = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidPeriod = "période invalide, la date de fin précède la date de début"
)

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

// Handle GET /api/v1/reservations/stats?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(domain.DateFormat, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /reservations/stats - Invalid start date %q: %v", query.Get("start"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	end, err := time.Parse(domain.DateFormat, query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /reservations/stats - Invalid end date %q: %v", query.Get("end"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Stats(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidPeriod) {
			h.logger.Warn("GET /reservations/stats - Invalid period %s - %s", query.Get("start"), query.Get("end"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /reservations/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/stats - period %s - %s total=%d", result.PeriodStart, result.PeriodEnd, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
