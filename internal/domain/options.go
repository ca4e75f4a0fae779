package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// OptionKind вид дополнительной опции бронирования
type OptionKind string

const (
	// OptionKindQuantity опция с количеством (например, количество сидений для шампуневой чистки)
	OptionKindQuantity OptionKind = "quantity"
	// OptionKindBoolean опция-переключатель с фиксированной ценой
	OptionKindBoolean OptionKind = "boolean"
	// OptionKindQuote опция "по запросу", цена обсуждается отдельно
	OptionKindQuote OptionKind = "quote"
)

var (
	// ErrInvalidOption возвращается при некорректной опции бронирования
	ErrInvalidOption = errors.New("domain: invalid reservation option")
)

// ReservationOption одна выбранная дополнительная опция
type ReservationOption struct {
	Name     string     `json:"name"`
	Kind     OptionKind `json:"kind"`
	Quantity int        `json:"quantity,omitempty"`
	Selected bool       `json:"selected,omitempty"`
}

// Validate проверяет согласованность опции с её видом
func (o ReservationOption) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidOption)
	}

	switch o.Kind {
	case OptionKindQuantity:
		if o.Quantity <= 0 {
			return fmt.Errorf("%w: option %q requires a positive quantity", ErrInvalidOption, o.Name)
		}
	case OptionKindBoolean, OptionKindQuote:
		if !o.Selected {
			return fmt.Errorf("%w: option %q must be selected", ErrInvalidOption, o.Name)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q for option %q", ErrInvalidOption, o.Kind, o.Name)
	}

	return nil
}

// Options набор выбранных опций бронирования, хранится в БД как jsonb
type Options []ReservationOption

// Validate проверяет все опции набора
func (opts Options) Validate() error {
	for _, o := range opts {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Value реализует driver.Valuer (сериализация в jsonb)
func (opts Options) Value() (driver.Value, error) {
	if opts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(opts)
}

// Scan реализует sql.Scanner (десериализация из jsonb)
func (opts *Options) Scan(src interface{}) error {
	if src == nil {
		*opts = Options{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidOption, src)
	}

	if len(data) == 0 {
		*opts = Options{}
		return nil
	}

	return json.Unmarshal(data, opts)
}
