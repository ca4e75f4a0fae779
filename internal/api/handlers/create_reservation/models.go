package create_reservation

import (
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	createReservation "github.com/lavexpress/booking-service/internal/usecase/create_reservation"
	"github.com/lavexpress/booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	VehicleCategory string         `json:"vehicleCategory"`
	CarBrand        string         `json:"carBrand"`
	Formula         string         `json:"formula"`
	Price           *float64       `json:"price,omitempty"`
	Options         domain.Options `json:"options,omitempty"`
	Date            string         `json:"date"`      // "2026-03-15"
	StartTime       string         `json:"startTime"` // "10:30"
	Comments        *string        `json:"comments,omitempty"`
	Newsletter      *bool          `json:"newsletter,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64          `json:"id"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	VehicleCategory string         `json:"vehicleCategory"`
	CarBrand        string         `json:"carBrand"`
	Formula         string         `json:"formula"`
	Price           float64        `json:"price"`
	Options         domain.Options `json:"options"`
	Date            string         `json:"date"`
	StartTime       string         `json:"startTime"`
	Status          string         `json:"status"`
	Comments        string         `json:"comments"`
	Newsletter      bool           `json:"newsletter"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		VehicleCategory: domain.VehicleCategory(r.VehicleCategory),
		CarBrand:        r.CarBrand,
		Formula:         r.Formula,
		Price:           r.Price,
		Options:         r.Options,
		Date:            date,
		StartTime:       startTime,
		Comments:        r.Comments,
		Newsletter:      r.Newsletter,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		FirstName:       resp.FirstName,
		LastName:        resp.LastName,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Address:         resp.Address,
		VehicleCategory: resp.VehicleCategory,
		CarBrand:        resp.CarBrand,
		Formula:         resp.Formula,
		Price:           resp.Price,
		Options:         resp.Options,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Status:          resp.Status,
		Comments:        resp.Comments,
		Newsletter:      resp.Newsletter,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
