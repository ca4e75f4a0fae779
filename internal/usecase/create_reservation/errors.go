package create_reservation

import (
	"errors"
	"fmt"

	"github.com/lavexpress/booking-service/pkg/types"
)

var (
	// ErrInvalidInput возвращается при отсутствии или некорректности обязательного поля
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ConflictError возвращается, когда запрошенный слот пересекается
// с существующим активным бронированием
// Несёт время и формулу конфликтующей брони для сообщения клиенту
type ConflictError struct {
	ReservationID int64
	StartTime     types.TimeString
	Formula       string
}

// Error реализует error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_reservation: slot overlaps reservation id=%d at %s (%s)",
		e.ReservationID, e.StartTime, e.Formula)
}
