package update_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	reservationsService "github.com/lavexpress/booking-service/internal/service/reservations"
	"github.com/lavexpress/booking-service/internal/service/reservations/models"
)

const (
	msgInvalidID           = "identifiant de réservation invalide"
	msgInvalidRequestBody  = "corps de requête invalide"
	msgInvalidStatus       = "statut invalide, attendu pending, confirmed, cancelled ou completed"
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

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["reservationId"]

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid status %q for id=%d", req.Status, id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation id=%d not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to update status for id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Reservation id=%d status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
