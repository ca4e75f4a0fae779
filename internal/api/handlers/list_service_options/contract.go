package list_service_options

import (
	"context"

	"github.com/lavexpress/booking-service/internal/service/formulas/models"
)

type FormulasService interface {
	ListOptions(ctx context.Context, category string) (*models.ServiceOptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
