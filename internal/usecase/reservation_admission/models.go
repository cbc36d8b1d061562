package reservation_admission

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

const (
	timeLayout = time.RFC3339

	operationCreate = "create"
	operationUpdate = "update"

	outcomeAdmitted = "admitted"
	outcomeConflict = "conflict"
	outcomeInvalid  = "invalid_argument"
	outcomeNotFound = "not_found"
	outcomeInternal = "internal_error"
)

// Policy настраиваемые правила допуска
type Policy struct {
	// CheckConflictsOnUpdate проверять пересечения при изменении бронирования.
	// По умолчанию выключено: изменение только пересчитывает цену.
	CheckConflictsOnUpdate bool
}

// Request модель запроса на создание или изменение бронирования
type Request struct {
	CourtID     int64     // ID корта
	UserName    string    // Имя (используется только при создании нового пользователя)
	PhoneNumber string    // Телефон, идентифицирует пользователя
	StartTime   time.Time // Начало
	EndTime     time.Time // Конец
	IsDoubles   bool      // Парная игра
}

// CreateResponse модель ответа на создание бронирования
type CreateResponse struct {
	ReservationID int64
	TotalPrice    decimal.Decimal
}

// Response модель ответа с полными данными бронирования
type Response struct {
	ID         int64
	Court      *domain.Court
	User       *domain.User
	StartTime  time.Time
	EndTime    time.Time
	IsDoubles  bool
	TotalPrice decimal.Decimal
}
