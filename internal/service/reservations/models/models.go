package models

import (
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
)

// ReservationResponse представление бронирования для HTTP слоя
type ReservationResponse struct {
	ID              int64                      `json:"id"`
	FirstName       string                     `json:"firstName"`
	LastName        string                     `json:"lastName"`
	Email           string                     `json:"email"`
	Phone           string                     `json:"phone"`
	Address         string                     `json:"address"`
	VehicleCategory string                     `json:"vehicleCategory"`
	CarBrand        string                     `json:"carBrand"`
	Formula         string                     `json:"formula"`
	Price           float64                    `json:"price"`
	Options         []domain.ReservationOption `json:"options"`
	Date            string                     `json:"date"`
	StartTime       string                     `json:"startTime"`
	Status          string                     `json:"status"`
	Comments        string                     `json:"comments"`
	Newsletter      bool                       `json:"newsletter"`
	CreatedAt       string                     `json:"createdAt"`
	UpdatedAt       string                     `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// WeekResponse бронирования недели с границами для отрисовки календаря
type WeekResponse struct {
	WeekStart    string                 `json:"weekStart"`
	WeekEnd      string                 `json:"weekEnd"`
	Reservations []*ReservationResponse `json:"reservations"`
}

// StatsResponse агрегированная статистика за период
type StatsResponse struct {
	PeriodStart string  `json:"periodStart"`
	PeriodEnd   string  `json:"periodEnd"`
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Confirmed   int     `json:"confirmed"`
	Completed   int     `json:"completed"`
	Cancelled   int     `json:"cancelled"`
	Revenue     float64 `json:"revenue"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PurgeResponse результат чистки бронирований по диапазону месяцев
type PurgeResponse struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Deleted int64  `json:"deleted"`
}

// FromDomainReservation конвертирует доменную модель в ответ сервиса
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	options := r.Options
	if options == nil {
		options = domain.Options{}
	}

	return &ReservationResponse{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		VehicleCategory: string(r.VehicleCategory),
		CarBrand:        r.CarBrand,
		Formula:         r.Formula,
		Price:           r.Price,
		Options:         options,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		Status:          string(r.Status),
		Comments:        r.Comments,
		Newsletter:      r.Newsletter,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	responses := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		responses = append(responses, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: responses,
		Total:        len(responses),
	}
}

// FromDomainStats конвертирует статистику
func FromDomainStats(s *domain.ReservationStats) *StatsResponse {
	return &StatsResponse{
		PeriodStart: s.PeriodStart.Format(domain.DateFormat),
		PeriodEnd:   s.PeriodEnd.Format(domain.DateFormat),
		Total:       s.Total,
		Pending:     s.Pending,
		Confirmed:   s.Confirmed,
		Completed:   s.Completed,
		Cancelled:   s.Cancelled,
		Revenue:     s.Revenue,
	}
}

// ToDomainStatus валидирует и конвертирует строку статуса
func ToDomainStatus(s string) (domain.ReservationStatus, bool) {
	status := domain.ReservationStatus(s)
	return status, domain.ValidStatus(status)
}
