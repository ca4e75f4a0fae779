package list_formulas

import (
	"context"

	"github.com/lavexpress/booking-service/internal/service/formulas/models"
)

type FormulasService interface {
	ListByCategory(ctx context.Context, category string) (*models.FormulaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
