package create_reservation

import (
	"fmt"
	"strings"

	"github.com/lavexpress/booking-service/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
// Внешний слой (sanitize middleware) уже очистил текстовые поля,
// но наличие и базовую форму проверяем повторно
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	if !req.VehicleCategory.IsValid() {
		return fmt.Errorf("%w: unknown vehicle category %q", ErrInvalidInput, req.VehicleCategory)
	}
	if strings.TrimSpace(req.CarBrand) == "" {
		return fmt.Errorf("%w: carBrand is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Formula) == "" {
		return fmt.Errorf("%w: formula is required", ErrInvalidInput)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if err := req.Options.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Comments != nil && len(*req.Comments) > domain.MaxCommentsLength {
		return fmt.Errorf("%w: comments exceed %d characters", ErrInvalidInput, domain.MaxCommentsLength)
	}

	return nil
}

// validateEmail проверяет базовую форму адреса, без полной валидации RFC
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return nil
}
