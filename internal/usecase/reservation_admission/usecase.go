package reservation_admission

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	"github.com/m04kA/SMC-TennisClubService/internal/service/users"
)

// UseCase допуск и тарификация бронирований
type UseCase struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	userResolver    UserResolver
	availability    AvailabilityChecker
	txManager       TransactionManager
	metrics         Metrics
	policy          Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	userResolver UserResolver,
	availability AvailabilityChecker,
	txManager TransactionManager,
	metrics Metrics,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		userResolver:    userResolver,
		availability:    availability,
		txManager:       txManager,
		metrics:         metrics,
		policy:          policy,
		logger:          logger,
	}
}

// Create допускает новое бронирование и возвращает его стоимость.
// Проверка пересечений и запись выполняются в одной транзакции
// под блокировкой строки корта.
func (uc *UseCase) Create(ctx context.Context, req *Request) (resp *CreateResponse, err error) {
	defer func() { uc.record(operationCreate, err) }()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: court=%d, phone=%s, start=%s, end=%s, doubles=%t",
		req.CourtID, req.PhoneNumber, req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout), req.IsDoubles)

	// 2. Получаем корт вместе с покрытием
	court, err := uc.getCourt(ctx, "CreateReservation", req.CourtID)
	if err != nil {
		return nil, err
	}

	// 3. Находим или создаем пользователя (фиксируется независимо от результата допуска)
	user, err := uc.resolveUser(ctx, "CreateReservation", req)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем окно
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateReservation: invalid window for court=%d: %v", req.CourtID, err)
		return nil, err
	}

	var created *domain.Reservation

	// 5. Проверка пересечений, расчет цены и запись в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем корт, чтобы параллельные допуски на него шли по очереди
		if err := uc.lockCourt(txCtx, "CreateReservation", court.ID); err != nil {
			return err
		}

		// 5.2. Проверяем пересечения с бронированиями корта
		if err := uc.checkConflict(txCtx, "CreateReservation", court.ID, req, nil); err != nil {
			return err
		}

		// 5.3. Считаем стоимость по тарифу покрытия
		price := domain.ComputePrice(court.Surface.PricePerMinute, req.StartTime, req.EndTime, req.IsDoubles)

		// 5.4. Сохраняем бронирование
		reservation := &domain.Reservation{
			CourtID:    court.ID,
			UserID:     user.ID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			IsDoubles:  req.IsDoubles,
			TotalPrice: price,
		}
		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, uc.transactionError("CreateReservation", err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, court=%d, user=%d, price=%s",
		created.ID, court.ID, user.ID, created.TotalPrice)

	return &CreateResponse{
		ReservationID: created.ID,
		TotalPrice:    created.TotalPrice,
	}, nil
}

// Update меняет корт, окно и тип игры живого бронирования и пересчитывает цену.
// Пересечения проверяются, только если это включено в Policy.
func (uc *UseCase) Update(ctx context.Context, id int64, req *Request) (resp *Response, err error) {
	defer func() { uc.record(operationUpdate, err) }()

	// 1. Валидация входных данных и существование бронирования
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	existing, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	if existing.Deleted {
		uc.logger.Warn("UpdateReservation: reservation id=%d is deleted", id)
		return nil, ErrReservationNotFound
	}

	uc.logger.Info("UpdateReservation: id=%d, court=%d, phone=%s, start=%s, end=%s, doubles=%t",
		id, req.CourtID, req.PhoneNumber, req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout), req.IsDoubles)

	// 2. Получаем корт вместе с покрытием
	court, err := uc.getCourt(ctx, "UpdateReservation", req.CourtID)
	if err != nil {
		return nil, err
	}

	// 3. Находим или создаем пользователя
	user, err := uc.resolveUser(ctx, "UpdateReservation", req)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем окно
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("UpdateReservation: invalid window for id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.Reservation

	// 5. Пересчет и запись в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.lockCourt(txCtx, "UpdateReservation", court.ID); err != nil {
			return err
		}

		if uc.policy.CheckConflictsOnUpdate {
			if err := uc.checkConflict(txCtx, "UpdateReservation", court.ID, req, &id); err != nil {
				return err
			}
		}

		price := domain.ComputePrice(court.Surface.PricePerMinute, req.StartTime, req.EndTime, req.IsDoubles)

		reservation := &domain.Reservation{
			CourtID:    court.ID,
			UserID:     user.ID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			IsDoubles:  req.IsDoubles,
			TotalPrice: price,
		}
		updated, err = uc.reservationRepo.Update(txCtx, id, reservation)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d deleted concurrently", id)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, uc.transactionError("UpdateReservation", err)
	}

	uc.logger.Info("UpdateReservation: updated reservation id=%d, price=%s", updated.ID, updated.TotalPrice)

	return &Response{
		ID:         updated.ID,
		Court:      court,
		User:       user,
		StartTime:  updated.StartTime,
		EndTime:    updated.EndTime,
		IsDoubles:  updated.IsDoubles,
		TotalPrice: updated.TotalPrice,
	}, nil
}

func (uc *UseCase) getCourt(ctx context.Context, op string, courtID int64) (*domain.Court, error) {
	court, err := uc.courtRepo.GetActiveByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			uc.logger.Warn("%s: court id=%d not found", op, courtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("%s: failed to get court id=%d: %v", op, courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	return court, nil
}

func (uc *UseCase) resolveUser(ctx context.Context, op string, req *Request) (*domain.User, error) {
	user, err := uc.userResolver.Resolve(ctx, req.PhoneNumber, req.UserName)
	if err != nil {
		if errors.Is(err, users.ErrInvalidInput) {
			uc.logger.Warn("%s: invalid user data: %v", op, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		uc.logger.Error("%s: failed to resolve user phone=%s: %v", op, req.PhoneNumber, err)
		return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
	}
	return user, nil
}

func (uc *UseCase) lockCourt(ctx context.Context, op string, courtID int64) error {
	if err := uc.courtRepo.LockByID(ctx, courtID); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			uc.logger.Warn("%s: court id=%d deleted concurrently", op, courtID)
			return ErrCourtNotFound
		}
		uc.logger.Error("%s: failed to lock court id=%d: %v", op, courtID, err)
		return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) checkConflict(ctx context.Context, op string, courtID int64, req *Request, excludeID *int64) error {
	conflict, err := uc.availability.HasConflict(ctx, courtID, req.StartTime, req.EndTime, excludeID)
	if err != nil {
		uc.logger.Error("%s: failed to check availability of court=%d: %v", op, courtID, err)
		return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}
	if conflict {
		uc.logger.Warn("%s: court=%d is already reserved between %s and %s",
			op, courtID, req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout))
		return ErrConflict
	}
	return nil
}

// transactionError пропускает ошибки use case как есть, остальное (begin/commit) считает внутренней ошибкой
func (uc *UseCase) transactionError(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInternal) {
		return err
	}
	uc.logger.Error("%s: transaction failed: %v", op, err)
	return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
}

func (uc *UseCase) record(operation string, err error) {
	if uc.metrics == nil {
		return
	}

	outcome := outcomeAdmitted
	switch {
	case err == nil:
	case errors.Is(err, ErrConflict):
		outcome = outcomeConflict
	case errors.Is(err, ErrInvalidArgument):
		outcome = outcomeInvalid
	case errors.Is(err, ErrNotFound):
		outcome = outcomeNotFound
	default:
		outcome = outcomeInternal
	}
	uc.metrics.IncReservationAdmission(operation, outcome)
}
