package update_service_option

import (
	"errors"
	"net/http"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	formulasService "github.com/lavexpress/booking-service/internal/service/formulas"
	"github.com/lavexpress/booking-service/internal/service/formulas/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidCategory    = "catégorie de véhicule inconnue"
	msgInvalidInput       = "données d'option invalides"
)

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

// Handle PUT /api/v1/options
// Включает или выключает показ дополнительной услуги, создавая запись при необходимости
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceOptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /options - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetOption(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, formulasService.ErrInvalidCategory):
			h.logger.Warn("PUT /options - Invalid category %q", req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, formulasService.ErrInvalidInput):
			h.logger.Warn("PUT /options - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /options - Failed to set option %q: %v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /options - Option %q category=%s enabled=%t", result.Name, result.Category, result.Enabled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
