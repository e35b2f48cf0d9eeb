package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// Catalog справочник услуг, мастеров и комнат
type Catalog interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

// ReservationRepository путь чтения бронирований
type ReservationRepository interface {
	FetchReservations(ctx context.Context, resourceType domain.ResourceType, resourceID int64, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
