package update_service_option

import (
	"context"

	"github.com/lavexpress/booking-service/internal/service/formulas/models"
)

type FormulasService interface {
	SetOption(ctx context.Context, req *models.ServiceOptionRequest) (*models.ServiceOptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
