package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// ReservationRepository интерфейс для работы с бронированиями
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	FetchReservations(ctx context.Context, resourceType domain.ResourceType, resourceID int64, date time.Time) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// Catalog источник названий услуг, мастеров и комнат
type Catalog interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
