package crud

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound возвращается, когда запись не найдена (или уже удалена для операций над живыми записями)
	ErrNotFound = errors.New("crud.repository: record not found")

	// ErrUniqueViolation возвращается при нарушении уникального индекса
	ErrUniqueViolation = errors.New("crud.repository: unique constraint violation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("crud.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("crud.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("crud.repository: failed to scan row")
)

const pqUniqueViolation = "23505"

// IsUniqueViolation проверяет, что ошибка драйвера вызвана нарушением уникальности
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
