package check_availability

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
	"github.com/lavexpress/booking-service/pkg/types"
)

type ConflictChecker interface {
	CheckConflict(
		ctx context.Context,
		date time.Time,
		startTime types.TimeString,
		category domain.VehicleCategory,
		formulaName string,
		excludeID *int64,
	) (*scheduling.CheckResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
