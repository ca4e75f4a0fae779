package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	"github.com/lavexpress/booking-service/internal/domain"
	getAvailableSlots "github.com/lavexpress/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate    = "format de date invalide, attendu YYYY-MM-DD"
	msgMissingFormula = "le paramètre formula est requis"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=&category=&formula=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		Date:            date,
		VehicleCategory: domain.VehicleCategory(query.Get("category")),
		Formula:         query.Get("formula"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFormula)
			return
		}
		h.logger.Error("GET /slots - Failed to build slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - date=%s formula=%q %d slots", query.Get("date"), req.Formula, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
