package formulas

import (
	"context"
	"errors"
	"fmt"

	"github.com/lavexpress/booking-service/internal/domain"
	formulaRepo "github.com/lavexpress/booking-service/internal/infra/storage/formula"
	"github.com/lavexpress/booking-service/internal/service/formulas/models"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
)

// Service сервис администрирования формул и опций услуг
type Service struct {
	formulaRepo FormulaRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса формул
func NewService(formulaRepo FormulaRepository, logger Logger) *Service {
	return &Service{
		formulaRepo: formulaRepo,
		logger:      logger,
	}
}

// ListByCategory получает формулы категории для витрины бронирования
func (s *Service) ListByCategory(ctx context.Context, categoryStr string) (*models.FormulaListResponse, error) {
	category := domain.VehicleCategory(categoryStr)
	if !category.IsValid() {
		s.logger.Warn("ListByCategory: invalid category %q", categoryStr)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, categoryStr)
	}

	list, err := s.formulaRepo.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Error("ListByCategory: repository error for category=%s: %v", category, err)
		return nil, fmt.Errorf("%w: ListByCategory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFormulaList(category, list), nil
}

// Create создает формулу
// Длительность - свободный текст администратора; непарсящееся значение
// допускается (резолвер откатится на длительность по умолчанию), но пишем warning
func (s *Service) Create(ctx context.Context, req *models.FormulaRequest) (*models.FormulaResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if _, ok := scheduling.ParseDurationMinutes(req.Duration); !ok {
		s.logger.Warn("Create: duration %q for formula %q will fall back to the default at scheduling time",
			req.Duration, req.Name)
	}

	created, err := s.formulaRepo.Create(ctx, req.ToDomainFormula())
	if err != nil {
		if errors.Is(err, formulaRepo.ErrDuplicateName) {
			s.logger.Warn("Create: formula name %q already exists for category %s", req.Name, req.Category)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error for formula %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: formula id=%d name=%q category=%s created", created.ID, created.Name, created.Category)
	return models.FromDomainFormula(created), nil
}

// Update обновляет формулу по ID
// Прошлые бронирования не затрагиваются: они хранят название и цену по значению
func (s *Service) Update(ctx context.Context, id int64, req *models.FormulaRequest) (*models.FormulaResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if _, ok := scheduling.ParseDurationMinutes(req.Duration); !ok {
		s.logger.Warn("Update: duration %q for formula %q will fall back to the default at scheduling time",
			req.Duration, req.Name)
	}

	formula := req.ToDomainFormula()
	formula.ID = id

	if err := s.formulaRepo.Update(ctx, formula); err != nil {
		switch {
		case errors.Is(err, formulaRepo.ErrFormulaNotFound):
			s.logger.Warn("Update: formula id=%d not found", id)
			return nil, ErrFormulaNotFound
		case errors.Is(err, formulaRepo.ErrDuplicateName):
			s.logger.Warn("Update: formula name %q already exists for category %s", req.Name, req.Category)
			return nil, ErrDuplicateName
		default:
			s.logger.Error("Update: repository error for formula id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.formulaRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload formula id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: formula id=%d updated", id)
	return models.FromDomainFormula(updated), nil
}

// Delete удаляет формулу по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.formulaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, formulaRepo.ErrFormulaNotFound) {
			s.logger.Warn("Delete: formula id=%d not found", id)
			return ErrFormulaNotFound
		}
		s.logger.Error("Delete: repository error for formula id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: formula id=%d deleted", id)
	return nil
}

// ListOptions получает переключатели дополнительных услуг категории
func (s *Service) ListOptions(ctx context.Context, categoryStr string) (*models.ServiceOptionListResponse, error) {
	category := domain.VehicleCategory(categoryStr)
	if !category.IsValid() {
		s.logger.Warn("ListOptions: invalid category %q", categoryStr)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, categoryStr)
	}

	list, err := s.formulaRepo.ListOptionsByCategory(ctx, category)
	if err != nil {
		s.logger.Error("ListOptions: repository error for category=%s: %v", category, err)
		return nil, fmt.Errorf("%w: ListOptions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOptionList(category, list), nil
}

// SetOption включает или выключает показ дополнительной услуги
func (s *Service) SetOption(ctx context.Context, req *models.ServiceOptionRequest) (*models.ServiceOptionResponse, error) {
	category := domain.VehicleCategory(req.Category)
	if !category.IsValid() {
		s.logger.Warn("SetOption: invalid category %q", req.Category)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: option name is required", ErrInvalidInput)
	}

	option, err := s.formulaRepo.UpsertOption(ctx, &domain.ServiceOption{
		Category: category,
		Name:     req.Name,
		Enabled:  req.Enabled,
	})
	if err != nil {
		s.logger.Error("SetOption: repository error for category=%s name=%q: %v", category, req.Name, err)
		return nil, fmt.Errorf("%w: SetOption - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetOption: option %q category=%s enabled=%t", option.Name, option.Category, option.Enabled)
	return models.FromDomainOption(option), nil
}

func (s *Service) validateRequest(req *models.FormulaRequest) error {
	if !domain.VehicleCategory(req.Category).IsValid() {
		s.logger.Warn("validateRequest: invalid category %q", req.Category)
		return fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: formula name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.PremiumWashPrice < 0 {
		return fmt.Errorf("%w: premium wash price must not be negative", ErrInvalidInput)
	}
	return nil
}
