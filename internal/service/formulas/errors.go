package formulas

import "errors"

var (
	// ErrFormulaNotFound возвращается, когда формула не найдена
	ErrFormulaNotFound = errors.New("formula not found")

	// ErrDuplicateName возвращается, когда название формулы уже занято в категории
	ErrDuplicateName = errors.New("formula name already exists for category")

	// ErrInvalidCategory возвращается при неизвестной категории транспорта
	ErrInvalidCategory = errors.New("invalid vehicle category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
