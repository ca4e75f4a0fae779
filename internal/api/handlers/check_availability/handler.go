package check_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lavexpress/booking-service/internal/api/handlers"
	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/types"
)

const (
	msgInvalidDate      = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidTime      = "format d'heure invalide, attendu HH:MM"
	msgMissingFormula   = "le paramètre formula est requis"
	msgInvalidExcludeID = "paramètre excludeId invalide"
)

// ConflictResponse описание конфликтующей брони в ответе проверки
type ConflictResponse struct {
	ReservationID int64  `json:"reservationId"`
	StartTime     string `json:"startTime"`
	Formula       string `json:"formula"`
}

// CheckResponse результат проверки доступности слота
type CheckResponse struct {
	Available bool              `json:"available"`
	Conflict  *ConflictResponse `json:"conflict,omitempty"`
	Message   string            `json:"message,omitempty"`
}

type Handler struct {
	checker ConflictChecker
	logger  Logger
}

func NewHandler(checker ConflictChecker, logger Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/check?date=&startTime=&category=&formula=&excludeId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /reservations/check - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /reservations/check - Invalid startTime %q: %v", query.Get("startTime"), err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	formula := query.Get("formula")
	if formula == "" {
		h.logger.Warn("GET /reservations/check - Missing formula parameter")
		handlers.RespondBadRequest(w, msgMissingFormula)
		return
	}

	// Неизвестная категория не ошибка: резолвер откатится на категорию по умолчанию
	category := domain.VehicleCategory(query.Get("category"))

	var excludeID *int64
	if raw := query.Get("excludeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /reservations/check - Invalid excludeId %q", raw)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = &id
	}

	result, err := h.checker.CheckConflict(r.Context(), date, startTime, category, formula, excludeID)
	if err != nil {
		h.logger.Error("GET /reservations/check - Conflict check failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := &CheckResponse{Available: !result.Conflict}
	if result.Conflict {
		resp.Conflict = &ConflictResponse{
			ReservationID: result.Conflicting.ID,
			StartTime:     result.Conflicting.StartTime.String(),
			Formula:       result.Conflicting.Formula,
		}
		resp.Message = result.Message
	}

	h.logger.Info("GET /reservations/check - date=%s time=%s available=%t",
		query.Get("date"), startTime, resp.Available)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
