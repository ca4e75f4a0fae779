package models

import (
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
)

// FormulaRequest запрос на создание/обновление формулы
type FormulaRequest struct {
	Category         string   `json:"category"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Duration         string   `json:"duration"`
	Icon             string   `json:"icon"`
	Services         []string `json:"services"`
	PremiumWash      bool     `json:"premiumWash"`
	PremiumWashPrice float64  `json:"premiumWashPrice"`
}

// FormulaResponse представление формулы для HTTP слоя
type FormulaResponse struct {
	ID               int64    `json:"id"`
	Category         string   `json:"category"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Duration         string   `json:"duration"`
	Icon             string   `json:"icon"`
	Services         []string `json:"services"`
	PremiumWash      bool     `json:"premiumWash"`
	PremiumWashPrice float64  `json:"premiumWashPrice"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// FormulaListResponse список формул категории
type FormulaListResponse struct {
	Category string             `json:"category"`
	Formulas []*FormulaResponse `json:"formulas"`
}

// ServiceOptionRequest запрос на переключение опции услуги
type ServiceOptionRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
}

// ServiceOptionResponse представление опции услуги
type ServiceOptionResponse struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
}

// ServiceOptionListResponse список опций категории
type ServiceOptionListResponse struct {
	Category string                   `json:"category"`
	Options  []*ServiceOptionResponse `json:"options"`
}

// ToDomainFormula конвертирует запрос в доменную модель
func (r *FormulaRequest) ToDomainFormula() *domain.Formula {
	services := r.Services
	if services == nil {
		services = []string{}
	}

	return &domain.Formula{
		Category:         domain.VehicleCategory(r.Category),
		Name:             r.Name,
		Price:            r.Price,
		Duration:         r.Duration,
		Icon:             r.Icon,
		Services:         services,
		PremiumWash:      r.PremiumWash,
		PremiumWashPrice: r.PremiumWashPrice,
	}
}

// FromDomainFormula конвертирует доменную модель в ответ сервиса
func FromDomainFormula(f *domain.Formula) *FormulaResponse {
	services := f.Services
	if services == nil {
		services = []string{}
	}

	return &FormulaResponse{
		ID:               f.ID,
		Category:         string(f.Category),
		Name:             f.Name,
		Price:            f.Price,
		Duration:         f.Duration,
		Icon:             f.Icon,
		Services:         services,
		PremiumWash:      f.PremiumWash,
		PremiumWashPrice: f.PremiumWashPrice,
		CreatedAt:        f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        f.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainFormulaList конвертирует список формул
func FromDomainFormulaList(category domain.VehicleCategory, list []*domain.Formula) *FormulaListResponse {
	formulas := make([]*FormulaResponse, 0, len(list))
	for _, f := range list {
		formulas = append(formulas, FromDomainFormula(f))
	}
	return &FormulaListResponse{
		Category: string(category),
		Formulas: formulas,
	}
}

// FromDomainOption конвертирует опцию услуги
func FromDomainOption(o *domain.ServiceOption) *ServiceOptionResponse {
	return &ServiceOptionResponse{
		ID:       o.ID,
		Category: string(o.Category),
		Name:     o.Name,
		Enabled:  o.Enabled,
	}
}

// FromDomainOptionList конвертирует список опций
func FromDomainOptionList(category domain.VehicleCategory, list []*domain.ServiceOption) *ServiceOptionListResponse {
	options := make([]*ServiceOptionResponse, 0, len(list))
	for _, o := range list {
		options = append(options, FromDomainOption(o))
	}
	return &ServiceOptionListResponse{
		Category: string(category),
		Options:  options,
	}
}
