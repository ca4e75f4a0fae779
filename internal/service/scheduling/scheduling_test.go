package scheduling

import (
	"context"
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	formulaRepo "github.com/lavexpress/booking-service/internal/infra/storage/formula"
)

// noopLogger заглушка логгера для тестов
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeFormulaRepo репозиторий формул в памяти, ключ "category/name"
type fakeFormulaRepo struct {
	formulas map[string]*domain.Formula
	err      error
}

func newFakeFormulaRepo(formulas ...*domain.Formula) *fakeFormulaRepo {
	repo := &fakeFormulaRepo{formulas: make(map[string]*domain.Formula)}
	for _, f := range formulas {
		repo.formulas[string(f.Category)+"/"+f.Name] = f
	}
	return repo
}

func (r *fakeFormulaRepo) GetByCategoryAndName(_ context.Context, category domain.VehicleCategory, name string) (*domain.Formula, error) {
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.formulas[string(category)+"/"+name]
	if !ok {
		return nil, formulaRepo.ErrFormulaNotFound
	}
	return f, nil
}

// fakeReservationRepo репозиторий бронирований в памяти
type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (r *fakeReservationRepo) GetByDate(_ context.Context, date time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	if r.err != nil {
		return nil, r.err
	}

	var result []*domain.Reservation
	for _, res := range r.reservations {
		if !res.Date.Equal(date) {
			continue
		}
		if !res.IsActive() {
			continue
		}
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		result = append(result, res)
	}
	return result, nil
}
