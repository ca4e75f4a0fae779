package update_formula

import (
	"context"

	"github.com/lavexpress/booking-service/internal/service/formulas/models"
)

type FormulasService interface {
	Update(ctx context.Context, id int64, req *models.FormulaRequest) (*models.FormulaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
