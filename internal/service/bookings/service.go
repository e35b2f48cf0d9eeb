package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/infra/catalog"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/snapshot"
)

// Service собирает данные, нужные для проверки бронирования:
// услугу, мастера, комнату из каталога и снимок бронирований дня из хранилища
type Service struct {
	catalog      Catalog
	reservations ReservationRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(catalog Catalog, reservations ReservationRepository, logger Logger) *Service {
	return &Service{
		catalog:      catalog,
		reservations: reservations,
		logger:       logger,
	}
}

// LoadParticipant загружает услугу, мастера и (если выбрана) комнату участника
func (s *Service) LoadParticipant(ctx context.Context, ids models.ParticipantIDs) (domain.Participant, error) {
	service, err := s.catalog.GetService(ctx, ids.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			s.logger.Warn("LoadParticipant: service id=%d not found", ids.ServiceID)
			return domain.Participant{}, ErrServiceNotFound
		}
		s.logger.Error("LoadParticipant: failed to get service id=%d: %v", ids.ServiceID, err)
		return domain.Participant{}, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	staff, err := s.catalog.GetStaff(ctx, ids.StaffID)
	if err != nil {
		if errors.Is(err, catalog.ErrStaffNotFound) {
			s.logger.Warn("LoadParticipant: staff id=%d not found", ids.StaffID)
			return domain.Participant{}, ErrStaffNotFound
		}
		s.logger.Error("LoadParticipant: failed to get staff id=%d: %v", ids.StaffID, err)
		return domain.Participant{}, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	participant := domain.Participant{Service: service, Staff: staff}
	if ids.RoomID == nil {
		return participant, nil
	}

	room, err := s.catalog.GetRoom(ctx, *ids.RoomID)
	if err != nil {
		if errors.Is(err, catalog.ErrRoomNotFound) {
			s.logger.Warn("LoadParticipant: room id=%d not found", *ids.RoomID)
			return domain.Participant{}, ErrRoomNotFound
		}
		s.logger.Error("LoadParticipant: failed to get room id=%d: %v", *ids.RoomID, err)
		return domain.Participant{}, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	participant.Room = room

	return participant, nil
}

// LoadSnapshot загружает все комнаты и бронирования дня по ним и по указанным мастерам
// Снимок читается заново при каждом вызове; кэширования между попытками нет
func (s *Service) LoadSnapshot(ctx context.Context, date time.Time, staffIDs ...int64) (*models.Snapshot, error) {
	rooms, err := s.catalog.ListRooms(ctx)
	if err != nil {
		s.logger.Error("LoadSnapshot: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	reservations, err := snapshot.Load(ctx, s.reservations, date, snapshot.RoomIDs(rooms), staffIDs)
	if err != nil {
		s.logger.Error("LoadSnapshot: failed to load reservations for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	s.logger.Info("LoadSnapshot: date=%s, rooms=%d, reservations=%d",
		date.Format(domain.DateFormat), len(rooms), len(reservations))

	return &models.Snapshot{Rooms: rooms, Reservations: reservations}, nil
}
