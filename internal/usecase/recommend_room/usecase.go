package recommend_room

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/roomassignment"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// UseCase подбирает комнату для услуги у мастера на дату и время
type UseCase struct {
	loader BookingLoader
	logger Logger
}

func NewUseCase(loader BookingLoader, logger Logger) *UseCase {
	return &UseCase{loader: loader, logger: logger}
}

// Execute возвращает выбор распределителя с объяснением
// Расписание и квалификацию мастера не проверяет: это делает проверка бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecommendRoom: service=%d, staff=%d, date=%s, time=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	if req.ServiceID <= 0 || req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: serviceID and staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

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

	snapshot, err := uc.loader.LoadSnapshot(ctx, req.Date, req.StaffID)
	if err != nil {
		uc.logger.Error("RecommendRoom: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	resolution := roomassignment.Resolve(roomassignment.Request{
		Service:        participant.Service,
		Staff:          participant.Staff,
		CandidateRooms: snapshot.Rooms,
		Date:           req.Date,
		StartTime:      start,
		Reservations:   snapshot.Reservations,
	})
	if !resolution.Found() {
		uc.logger.Warn("RecommendRoom: %v", resolution.Errors)
		return nil, fmt.Errorf("%w: %s", ErrNoRoomAvailable, strings.Join(resolution.Errors, "; "))
	}

	uc.logger.Info("RecommendRoom: chose room id=%d (%s)", resolution.Room.ID, resolution.Reason)

	return &Response{
		Room:         resolution.Room,
		Reason:       resolution.Reason,
		Alternatives: resolution.Ranked[1:],
	}, nil
}
