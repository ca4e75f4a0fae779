package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	createReservation "github.com/lavexpress/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDateTime    = "format de date ou d'heure invalide, attendu YYYY-MM-DD et HH:MM"
	msgInvalidInput       = "données de réservation invalides ou incomplètes"
	msgSlotTaken          = "ce créneau est déjà réservé (%s, %s)"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createReservation.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /reservations - Slot conflict: date=%s time=%s conflicting_id=%d",
				req.Date, req.StartTime, conflictErr.ReservationID)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotTaken, conflictErr.StartTime, conflictErr.Formula))

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d date=%s time=%s",
		result.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
