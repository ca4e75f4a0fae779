package update_reservation

import (
	"errors"
	"fmt"

	"github.com/lavexpress/booking-service/pkg/types"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrInvalidInput возвращается при отсутствии или некорректности обязательного поля
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)

// ConflictError возвращается, когда новый слот пересекается с другим
// активным бронированием (собственная бронь из проверки исключена)
type ConflictError struct {
	ReservationID int64
	StartTime     types.TimeString
	Formula       string
}

// Error реализует error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("update_reservation: slot overlaps reservation id=%d at %s (%s)",
		e.ReservationID, e.StartTime, e.Formula)
}
