package purge_reservations

import (
	"errors"
	"net/http"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	reservationsService "github.com/lavexpress/booking-service/internal/service/reservations"
)

const msgInvalidPeriod = "période invalide, attendu from et to au format YYYY-MM"

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

// Handle DELETE /api/v1/reservations?from=YYYY-MM&to=YYYY-MM
// Массовая чистка старых месяцев, границы включительно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" || to == "" {
		h.logger.Warn("DELETE /reservations - Missing from/to parameters")
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.PurgeMonths(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidPeriod) {
			h.logger.Warn("DELETE /reservations - Invalid period %s - %s: %v", from, to, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("DELETE /reservations - Failed to purge %s - %s: %v", from, to, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations - Purged %d reservations from %s to %s", result.Deleted, from, to)
	handlers.RespondJSON(w, http.StatusOK, result)
}
