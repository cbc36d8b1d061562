package courts

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден или недоступен
	ErrCourtNotFound = errors.New("courts: court not found")

	// ErrSurfaceNotFound возвращается, когда указанное покрытие не найдено или удалено
	ErrSurfaceNotFound = errors.New("courts: surface not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("courts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts: internal error")
)
