package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/infra/catalog"
	reservationRepo "github.com/m04kA/SMC-SpaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SpaBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/staffschedule"
)

// Service просмотр и отмена существующих бронирований
type Service struct {
	reservationRepo ReservationRepository
	catalog         Catalog
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(reservationRepo ReservationRepository, catalog Catalog, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// GetByID получает бронирование клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingDetails, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", id, customerID)

	reservation, err := s.getOwned(ctx, "GetByID", id, customerID)
	if err != nil {
		return nil, err
	}

	return s.details(ctx, reservation), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) ([]*models.BookingDetails, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var status *domain.ReservationStatus
	if req.Status != nil {
		parsed, ok := domain.ParseReservationStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		status = &parsed
	}

	found, err := s.reservationRepo.GetByCustomerID(ctx, req.CustomerID, status)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.BookingDetails, 0, len(found))
	for _, r := range found {
		result = append(result, s.details(ctx, r))
	}

	s.logger.Info("GetCustomerBookings: found %d bookings for customer=%d", len(result), req.CustomerID)
	return result, nil
}

// Cancel отменяет бронирование клиента
// После отмены комната и мастер снова свободны в этом интервале
func (s *Service) Cancel(ctx context.Context, id int64, customerID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%d", id, customerID)

	reservation, err := s.getOwned(ctx, "Cancel", id, customerID)
	if err != nil {
		return err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// GetStaffDay возвращает расписание мастера и его бронирования на дату
func (s *Service) GetStaffDay(ctx context.Context, staffID int64, date time.Time) (*models.StaffDay, error) {
	s.logger.Info("GetStaffDay: staff=%d, date=%s", staffID, date.Format(domain.DateFormat))

	staff, err := s.catalog.GetStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, catalog.ErrStaffNotFound) {
			s.logger.Warn("GetStaffDay: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("%w: GetStaffDay - catalog error: %v", ErrInternal, err)
	}

	found, err := s.reservationRepo.FetchReservations(ctx, domain.ResourceStaff, staffID, date)
	if err != nil {
		s.logger.Error("GetStaffDay: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffDay - repository error: %v", ErrInternal, err)
	}

	day := &models.StaffDay{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Date:      date,
		Working:   staffschedule.IsAvailable(staff, date).OK,
		Schedule:  staffschedule.Describe(staff),
		Bookings:  make([]*models.BookingDetails, 0, len(found)),
	}
	if shift, ok := staff.DayFor(date); ok && shift.Available && shift.HasShiftHours() {
		day.Shift = fmt.Sprintf("%s-%s", shift.StartTime, shift.EndTime)
	}

	for _, r := range found {
		day.Bookings = append(day.Bookings, s.details(ctx, r))
	}

	return day, nil
}

func (s *Service) getOwned(ctx context.Context, op string, id int64, customerID int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if reservation.CustomerID != customerID {
		s.logger.Warn("%s: access denied for customer=%d to booking id=%d", op, customerID, id)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}

// details дополняет бронирование названиями; отсутствующая в каталоге запись дает пустое название
func (s *Service) details(ctx context.Context, r *domain.Reservation) *models.BookingDetails {
	d := &models.BookingDetails{Reservation: r}

	if service, err := s.catalog.GetService(ctx, r.ServiceID); err == nil {
		d.ServiceName = service.Name
	}
	if staff, err := s.catalog.GetStaff(ctx, r.StaffID); err == nil {
		d.StaffName = staff.Name
	}
	if room, err := s.catalog.GetRoom(ctx, r.RoomID); err == nil {
		d.RoomName = room.Name
	}

	return d
}
