package create_formula

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
	msgInvalidInput       = "données de formule invalides"
	msgDuplicateName      = "une formule porte déjà ce nom dans cette catégorie"
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

// Handle POST /api/v1/formulas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.FormulaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /formulas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, formulasService.ErrInvalidCategory):
			h.logger.Warn("POST /formulas - Invalid category %q", req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, formulasService.ErrInvalidInput):
			h.logger.Warn("POST /formulas - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, formulasService.ErrDuplicateName):
			h.logger.Warn("POST /formulas - Duplicate name %q in category %s", req.Name, req.Category)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		default:
			h.logger.Error("POST /formulas - Failed to create formula %q: %v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /formulas - Formula created: id=%d name=%q category=%s", result.ID, result.Name, result.Category)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
