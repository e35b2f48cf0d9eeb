package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
)

// UseCase use case для получения доступных времен начала услуги у мастера
type UseCase struct {
	loader       BookingLoader
	validator    BookingValidator
	slotStep     int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// slotStep шаг перебора времен начала в минутах (по умолчанию шаг сетки)
func NewUseCase(loader BookingLoader, validator BookingValidator, slotStep int, logger Logger) *UseCase {
	if slotStep <= 0 {
		slotStep = domain.GridStepMinutes
	}

	return &UseCase{
		loader:       loader,
		validator:    validator,
		slotStep:     slotStep,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времен начала
// Время доступно, если бронирование на него проходит проверку без ошибок и для него находится комната
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, staff=%d, date=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу и мастера
	participant, err := uc.loader.LoadParticipant(ctx, models.ParticipantIDs{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, bookings.ErrStaffNotFound):
			return nil, ErrStaffNotFound
		default:
			return nil, fmt.Errorf("%w: failed to load booking data: %v", ErrInternal, err)
		}
	}

	// 5. Снимок бронирований дня
	snapshot, err := uc.loader.LoadSnapshot(ctx, req.Date, req.StaffID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 6. Генерируем кандидатов
	starts := generateStartTimes(uc.validator.BusinessHours(), participant.Service.DurationMinutes, uc.slotStep, req.Date, now)

	// 7. Проверяем каждое время тем же валидатором, что и бронирование
	slots := make([]domain.AvailableSlot, 0, len(starts))
	for _, start := range starts {
		result, err := uc.validator.Validate(bookingvalidator.Input{
			Request: domain.BookingRequest{
				Service:   participant.Service,
				Staff:     participant.Staff,
				Date:      req.Date,
				StartTime: start.String(),
			},
			Rooms:        snapshot.Rooms,
			Reservations: snapshot.Reservations,
			Now:          now,
		})
		if err != nil {
			uc.logger.Error("GetAvailableSlots: validator error at %s: %v", start, err)
			return nil, fmt.Errorf("%w: validator error: %v", ErrInternal, err)
		}
		if !result.IsValid || result.RecommendedRoomID == nil {
			continue
		}

		slot := domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: participant.Service.DurationMinutes,
			RoomID:          *result.RecommendedRoomID,
			Warnings:        result.WarningMessages(),
		}
		if room := snapshot.RoomByID(slot.RoomID); room != nil {
			slot.RoomName = room.Name
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: found %d available start times out of %d", len(slots), len(starts))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     slots,
	}, nil
}
