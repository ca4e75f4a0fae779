package delete_formula

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	formulasService "github.com/lavexpress/booking-service/internal/service/formulas"
)

const (
	msgInvalidID       = "identifiant de formule invalide"
	msgFormulaNotFound = "formule introuvable"
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

// Handle DELETE /api/v1/formulas/{formulaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["formulaId"]

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /formulas/{id} - Invalid id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, formulasService.ErrFormulaNotFound) {
			h.logger.Warn("DELETE /formulas/{id} - Formula id=%d not found", id)
			handlers.RespondNotFound(w, msgFormulaNotFound)
			return
		}
		h.logger.Error("DELETE /formulas/{id} - Failed to delete formula id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /formulas/{id} - Formula id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
