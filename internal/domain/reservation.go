package domain

import (
	"time"

	"github.com/lavexpress/booking-service/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents one booked carwash appointment
type Reservation struct {
	ID int64

	// Client fields
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string

	// Service fields
	VehicleCategory VehicleCategory
	CarBrand        string
	// Formula может содержать несколько названий формул через запятую,
	// если при бронировании был выбран пакет
	Formula string
	Price   float64
	Options Options

	// Scheduling fields
	Date      time.Time
	StartTime types.TimeString

	// Lifecycle fields
	Status     ReservationStatus
	Comments   string
	Newsletter bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation takes part in conflict checks
// and calendar views (i.e. it is not cancelled)
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// ValidStatus проверяет, что статус входит в допустимый набор
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ReservationsFilter фильтр выборки бронирований
type ReservationsFilter struct {
	StartDate       *time.Time         // Начало периода (включительно)
	EndDate         *time.Time         // Конец периода (включительно)
	Status          *ReservationStatus // Фильтр по конкретному статусу
	ExcludeID       *int64             // Исключить бронирование по ID (для проверки при редактировании)
	IncludeInactive bool               // Включать ли отменённые бронирования
}

// WeekRange границы недели календаря (понедельник - воскресенье)
type WeekRange struct {
	Start time.Time
	End   time.Time
}
