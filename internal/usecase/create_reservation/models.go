package create_reservation

import (
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
// Статус клиентом не передаётся: новая бронь всегда создаётся в статусе pending
type Request struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string

	VehicleCategory domain.VehicleCategory
	CarBrand        string
	// Formula может содержать несколько названий через запятую при пакетном выборе
	Formula string
	Price   *float64       // Опционально, по умолчанию 0
	Options domain.Options // Опционально

	Date      time.Time
	StartTime types.TimeString

	Comments   *string // Опционально, по умолчанию ""
	Newsletter *bool   // Опционально, по умолчанию false
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	VehicleCategory string
	CarBrand        string
	Formula         string
	Price           float64
	Options         domain.Options
	Date            time.Time
	StartTime       types.TimeString
	Status          string
	Comments        string
	Newsletter      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func fromDomain(r *domain.Reservation) *Response {
	return &Response{
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
		Options:         r.Options,
		Date:            r.Date,
		StartTime:       r.StartTime,
		Status:          string(r.Status),
		Comments:        r.Comments,
		Newsletter:      r.Newsletter,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
