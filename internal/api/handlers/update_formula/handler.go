package update_formula

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	formulasService "github.com/lavexpress/booking-service/internal/service/formulas"
	"github.com/lavexpress/booking-service/internal/service/formulas/models"
)

const (
	msgInvalidID          = "identifiant de formule invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidCategory    = "catégorie de véhicule inconnue"
	msgInvalidInput       = "données de formule invalides"
	msgFormulaNotFound    = "formule introuvable"
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

// Handle PUT /api/v1/formulas/{formulaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["formulaId"]

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /formulas/{id} - Invalid id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.FormulaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /formulas/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, formulasService.ErrInvalidCategory):
			h.logger.Warn("PUT /formulas/{id} - Invalid category %q", req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, formulasService.ErrInvalidInput):
			h.logger.Warn("PUT /formulas/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, formulasService.ErrFormulaNotFound):
			h.logger.Warn("PUT /formulas/{id} - Formula id=%d not found", id)
			handlers.RespondNotFound(w, msgFormulaNotFound)

		case errors.Is(err, formulasService.ErrDuplicateName):
			h.logger.Warn("PUT /formulas/{id} - Duplicate name %q in category %s", req.Name, req.Category)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		default:
			h.logger.Error("PUT /formulas/{id} - Failed to update formula id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /formulas/{id} - Formula id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
