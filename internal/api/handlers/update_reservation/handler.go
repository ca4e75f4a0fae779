package update_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	"github.com/lavexpress/booking-service/internal/service/reservations/models"
	updateReservation "github.com/lavexpress/booking-service/internal/usecase/update_reservation"
)

const (
	msgInvalidID           = "identifiant de réservation invalide"
	msgInvalidRequestBody  = "corps de requête invalide"
	msgInvalidDateTime     = "format de date ou d'heure invalide, attendu YYYY-MM-DD et HH:MM"
	msgInvalidInput        = "données de réservation invalides ou incomplètes"
	msgReservationNotFound = "réservation introuvable"
	msgSlotTaken           = "ce créneau est déjà réservé (%s, %s)"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["reservationId"]

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /reservations/{id} - Invalid id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *updateReservation.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /reservations/{id} - Slot conflict: id=%d conflicting_id=%d",
				id, conflictErr.ReservationID)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotTaken, conflictErr.StartTime, conflictErr.Formula))

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation id=%d not found", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(result))
}
