package formula

import "errors"

var (
	// ErrFormulaNotFound возвращается, когда формула не найдена
	ErrFormulaNotFound = errors.New("formula.repository: formula not found")

	// ErrOptionNotFound возвращается, когда опция услуги не найдена
	ErrOptionNotFound = errors.New("formula.repository: service option not found")

	// ErrDuplicateName возвращается при попытке создать формулу с занятым
	// в пределах категории названием
	ErrDuplicateName = errors.New("formula.repository: formula name already exists for category")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("formula.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("formula.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("formula.repository: failed to scan row")
)
