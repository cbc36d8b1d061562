package reservation_admission

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound общий предок ошибок "не найдено"
	ErrNotFound = errors.New("reservation_admission: not found")

	// ErrCourtNotFound возвращается, когда корт не найден, удален или удалено его покрытие
	ErrCourtNotFound = fmt.Errorf("%w: court", ErrNotFound)

	// ErrReservationNotFound возвращается, когда изменяемое бронирование не найдено или отменено
	ErrReservationNotFound = fmt.Errorf("%w: reservation", ErrNotFound)

	// ErrInvalidArgument возвращается при некорректных входных данных или окне бронирования
	ErrInvalidArgument = errors.New("reservation_admission: invalid argument")

	// ErrConflict возвращается, когда окно пересекается с другим бронированием корта
	ErrConflict = errors.New("reservation_admission: court is already reserved for this time")

	// ErrInternal возвращается при ошибках хранилища или транзакции
	ErrInternal = errors.New("reservation_admission: internal error")
)
