package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	reservationsService "github.com/lavexpress/booking-service/internal/service/reservations"
)

const (
	msgInvalidID           = "identifiant de réservation invalide"
	msgReservationNotFound = "réservation introuvable"
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

// Handle DELETE /api/v1/reservations/{reservationId}
// Физическое удаление; для освобождения слота с сохранением истории
// используется смена статуса на cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["reservationId"]

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /reservations/{id} - Invalid id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			h.logger.Warn("DELETE /reservations/{id} - Reservation id=%d not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
