package list_service_options

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

// Handle GET /api/v1/options/{category}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	result, err := h.service.ListOptions(r.Context(), category)
	if err != nil {
		if errors.Is(err, formulasService.ErrInvalidCategory) {
			h.logger.Warn("GET /options/{category} - Invalid category %q", category)
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		h.logger.Error("GET /options/{category} - Failed to list options for %q: %v", category, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /options/{category} - category=%s %d options", category, len(result.Options))
	handlers.RespondJSON(w, http.StatusOK, result)
}
