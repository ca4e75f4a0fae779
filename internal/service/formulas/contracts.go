package formulas

import (
	"context"

	"github.com/lavexpress/booking-service/internal/domain"
)

// FormulaRepository интерфейс репозитория формул и опций услуг
type FormulaRepository interface {
	Create(ctx context.Context, formula *domain.Formula) (*domain.Formula, error)
	GetByID(ctx context.Context, id int64) (*domain.Formula, error)
	ListByCategory(ctx context.Context, category domain.VehicleCategory) ([]*domain.Formula, error)
	Update(ctx context.Context, formula *domain.Formula) error
	Delete(ctx context.Context, id int64) error
	ListOptionsByCategory(ctx context.Context, category domain.VehicleCategory) ([]*domain.ServiceOption, error)
	UpsertOption(ctx context.Context, option *domain.ServiceOption) (*domain.ServiceOption, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
