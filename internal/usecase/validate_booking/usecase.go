package validate_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
)

// UseCase use case проверки бронирования без сохранения
type UseCase struct {
	loader       BookingLoader
	validator    BookingValidator
	metrics      MetricsCollector
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loader BookingLoader,
	validator BookingValidator,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:       loader,
		validator:    validator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку
// Нарушения бизнес-правил возвращаются в Response.Result, а не ошибкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateBooking: service=%d, staff=%d, room=%v, date=%s, time=%s",
		req.ServiceID, req.StaffID, ptr.Value(req.RoomID), req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу, мастера и комнату
	participant, err := uc.loader.LoadParticipant(ctx, models.ParticipantIDs{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		RoomID:    req.RoomID,
	})
	if err != nil {
		return nil, mapLoadError(err)
	}

	// 3. Получаем снимок бронирований дня
	snapshot, err := uc.loader.LoadSnapshot(ctx, req.Date, req.StaffID)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 4. Проверяем
	result, err := uc.validator.Validate(bookingvalidator.Input{
		Request: domain.BookingRequest{
			Service:              participant.Service,
			Staff:                participant.Staff,
			Room:                 participant.Room,
			Date:                 req.Date,
			StartTime:            req.StartTime,
			ExcludeReservationID: req.ExcludeReservationID,
		},
		Rooms:        snapshot.Rooms,
		Reservations: snapshot.Reservations,
		Now:          uc.timeProvider.Now(),
	})
	if err != nil {
		uc.logger.Error("ValidateBooking: validator error: %v", err)
		return nil, fmt.Errorf("%w: validator error: %v", ErrInternal, err)
	}

	uc.metrics.ObserveValidation(result.IsValid)

	roomID := req.RoomID
	if roomID == nil {
		roomID = result.RecommendedRoomID
	}

	uc.logger.Info("ValidateBooking: valid=%t, errors=%d, warnings=%d, room=%v",
		result.IsValid, len(result.Errors), len(result.Warnings), ptr.Value(roomID))

	return &Response{Result: result, RoomID: roomID}, nil
}

func mapLoadError(err error) error {
	switch {
	case errors.Is(err, bookings.ErrServiceNotFound):
		return ErrServiceNotFound
	case errors.Is(err, bookings.ErrStaffNotFound):
		return ErrStaffNotFound
	case errors.Is(err, bookings.ErrRoomNotFound):
		return ErrRoomNotFound
	default:
		return fmt.Errorf("%w: failed to load booking data: %v", ErrInternal, err)
	}
}
