package update_reservation

import (
	"time"

	"github.com/lavexpress/booking-service/internal/domain"
	updateReservation "github.com/lavexpress/booking-service/internal/usecase/update_reservation"
	"github.com/lavexpress/booking-service/pkg/types"
)

// UpdateReservationRequest HTTP request model
// Полное обновление: все поля обязательны, кроме опциональных по смыслу
type UpdateReservationRequest struct {
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	VehicleCategory string         `json:"vehicleCategory"`
	CarBrand        string         `json:"carBrand"`
	Formula         string         `json:"formula"`
	Price           float64        `json:"price"`
	Options         domain.Options `json:"options,omitempty"`
	Date            string         `json:"date"`
	StartTime       string         `json:"startTime"`
	Comments        string         `json:"comments"`
	Newsletter      bool           `json:"newsletter"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) (*updateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateReservation.Request{
		ID:              id,
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
