package surfaces

import "errors"

var (
	// ErrSurfaceNotFound возвращается, когда покрытие не найдено или удалено
	ErrSurfaceNotFound = errors.New("surfaces: surface not found")

	// ErrSurfaceAlreadyExists возвращается, когда живое покрытие с таким именем уже есть
	ErrSurfaceAlreadyExists = errors.New("surfaces: surface already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("surfaces: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("surfaces: internal error")
)
