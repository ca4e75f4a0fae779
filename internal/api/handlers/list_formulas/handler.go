package list_formulas

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	formulasService "github.com/lavexpress/booking-service/internal/service/formulas"
)

const msgInvalidCategory = "catégorie de véhicule inconnue"

type Handler struct {
	service FormulasService
	logger  Logger
}

func NewHandler(service FormulasService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/formulas/{category}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	result, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, formulasService.ErrInvalidCategory) {
			h.logger.Warn("GET /formulas/{category} - Invalid category %q", category)
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		h.logger.Error("GET /formulas/{category} - Failed to list formulas for %q: %v", category, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /formulas/{category} - category=%s %d formulas", category, len(result.Formulas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
