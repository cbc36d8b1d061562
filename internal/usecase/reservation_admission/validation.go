package reservation_admission

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// validateRequest проверяет форму запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidArgument)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: court id is required", ErrInvalidArgument)
	}

	req.PhoneNumber = domain.NormalizePhoneNumber(req.PhoneNumber)
	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidArgument)
	}
	if len(req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phone number is longer than %d characters", ErrInvalidArgument, domain.MaxPhoneNumberLength)
	}
	if len(req.UserName) > domain.MaxNameLength {
		return fmt.Errorf("%w: user name is longer than %d characters", ErrInvalidArgument, domain.MaxNameLength)
	}

	return nil
}

// validateWindow проверяет окно: end > start и не меньше MinReservationMinutes полных минут
func validateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidArgument)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidArgument)
	}

	window := domain.Window{Start: start, End: end}
	if window.Minutes() < domain.MinReservationMinutes {
		return fmt.Errorf("%w: reservation must last at least %d minutes", ErrInvalidArgument, domain.MinReservationMinutes)
	}

	return nil
}
