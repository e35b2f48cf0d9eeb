package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SpaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// UseCase use case для создания одиночного бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	loader          BookingLoader
	validator       BookingValidator
	metrics         MetricsCollector
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	loader BookingLoader,
	validator BookingValidator,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		loader:          loader,
		validator:       validator,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute проверяет бронирование и фиксирует его в хранилище
// Хранилище само перепроверяет пересечения; проигранная гонка возвращается как ErrSlotNotAvailable без повтора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, staff=%d, room=%v, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.StaffID, ptr.Value(req.RoomID), req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу, мастера и комнату
	participant, err := uc.loader.LoadParticipant(ctx, models.ParticipantIDs{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		RoomID:    req.RoomID,
	})
	if err != nil {
		return nil, mapLoadError(err)
	}

	// 4. Получаем свежий снимок бронирований дня
	snapshot, err := uc.loader.LoadSnapshot(ctx, req.Date, req.StaffID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 5. Проверяем бронирование
	result, err := uc.validator.Validate(bookingvalidator.Input{
		Request: domain.BookingRequest{
			Service:    participant.Service,
			Staff:      participant.Staff,
			Room:       participant.Room,
			Date:       req.Date,
			StartTime:  req.StartTime,
			CustomerID: req.CustomerID,
		},
		Rooms:        snapshot.Rooms,
		Reservations: snapshot.Reservations,
		Now:          now,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: validator error: %v", err)
		return nil, fmt.Errorf("%w: validator error: %v", ErrInternal, err)
	}

	uc.metrics.ObserveValidation(result.IsValid)

	if !result.IsValid {
		uc.logger.Warn("CreateBooking: booking rejected: %v", result.ErrorMessages())
		return nil, &ValidationError{Result: result}
	}

	// 6. Комната: выбранная пользователем или назначенная распределителем
	room := participant.Room
	if room == nil {
		room = snapshot.RoomByID(ptr.Value(result.RecommendedRoomID))
	}
	if room == nil {
		uc.logger.Error("CreateBooking: valid result without room")
		return nil, fmt.Errorf("%w: no room assigned", ErrInternal)
	}

	// 7. Фиксируем; время уже проверено валидатором
	start, _ := types.NewTimeStringFromString(req.StartTime)

	created, err := uc.reservationRepo.CommitSingleBooking(ctx, domain.SingleCommit{
		ServiceID:       participant.Service.ID,
		StaffID:         participant.Staff.ID,
		RoomID:          room.ID,
		CustomerID:      req.CustomerID,
		Date:            req.Date,
		StartTime:       start,
		DurationMinutes: participant.Service.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, reservationRepo.ErrCommitConflict) {
			uc.metrics.ObserveCommitConflict("single")
			uc.logger.Warn("CreateBooking: lost race at commit: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		}
		uc.logger.Error("CreateBooking: failed to commit booking: %v", err)
		return nil, fmt.Errorf("%w: failed to commit booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d in room id=%d", created.ID, room.ID)

	return &Response{
		ID:              created.ID,
		CustomerID:      created.CustomerID,
		ServiceID:       created.ServiceID,
		StaffID:         created.StaffID,
		RoomID:          created.RoomID,
		BookingDate:     created.Date,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		ServiceName:     participant.Service.Name,
		ServicePrice:    participant.Service.Price,
		StaffName:       participant.Staff.Name,
		RoomName:        room.Name,
		Warnings:        result.WarningMessages(),
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
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
