package scheduling

import "errors"

var (
	// ErrInvalidStartTime возвращается при некорректном времени начала
	ErrInvalidStartTime = errors.New("scheduling: invalid start time")

	// ErrInternal возвращается при инфраструктурных ошибках (недоступность БД и т.п.)
	ErrInternal = errors.New("scheduling: internal error")
)
