package scheduling

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"github.com/lavexpress/booking-service/internal/domain"
	formulaRepo "github.com/lavexpress/booking-service/internal/infra/storage/formula"
)

// durationPattern допустимые формы длительности формулы:
// "1h30" (часы и минуты), "2h" (только часы), "45" (только минуты)
var durationPattern = regexp.MustCompile(`^(?:(\d+)h(\d*)|(\d+))$`)

// ParseDurationMinutes парсит строку длительности формулы в минуты
// Возвращает false, если строка не соответствует ни одной из допустимых форм
func ParseDurationMinutes(s string) (int, bool) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	// Форма "45" - только минуты
	if m[3] != "" {
		minutes, err := strconv.Atoi(m[3])
		if err != nil {
			return 0, false
		}
		return minutes, true
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil {
			return 0, false
		}
	}

	return hours*60 + minutes, true
}

// Resolver резолвер длительности услуги по категории транспорта и названию формулы
//
// Длительность - справочная информация для планирования, а не критичное поле,
// поэтому любая ошибка (формула не найдена, текст не парсится, БД недоступна)
// деградирует до значения по умолчанию с warning в логах. Resolver никогда
// не возвращает ошибку.
type Resolver struct {
	formulaRepo FormulaRepository
	logger      Logger
}

// NewResolver создает резолвер длительности
func NewResolver(formulaRepo FormulaRepository, logger Logger) *Resolver {
	return &Resolver{
		formulaRepo: formulaRepo,
		logger:      logger,
	}
}

// ResolveDuration возвращает длительность формулы в минутах
// Неизвестная категория откатывается на "citadine" перед поиском
func (r *Resolver) ResolveDuration(ctx context.Context, category domain.VehicleCategory, formulaName string) int {
	lookupCategory := domain.NormalizeCategory(category)
	if lookupCategory != category {
		r.logger.Warn("ResolveDuration: unknown category %q, falling back to %q", category, lookupCategory)
	}

	formula, err := r.formulaRepo.GetByCategoryAndName(ctx, lookupCategory, formulaName)
	if err != nil {
		if errors.Is(err, formulaRepo.ErrFormulaNotFound) {
			r.logger.Warn("ResolveDuration: formula %q not found for category %q, using default %d min",
				formulaName, lookupCategory, domain.DefaultDurationMinutes)
		} else {
			r.logger.Warn("ResolveDuration: lookup failed for category=%q formula=%q: %v, using default %d min",
				lookupCategory, formulaName, err, domain.DefaultDurationMinutes)
		}
		return domain.DefaultDurationMinutes
	}

	minutes, ok := ParseDurationMinutes(formula.Duration)
	if !ok {
		r.logger.Warn("ResolveDuration: unparseable duration %q for category=%q formula=%q, using default %d min",
			formula.Duration, lookupCategory, formulaName, domain.DefaultDurationMinutes)
		return domain.DefaultDurationMinutes
	}

	return minutes
}
