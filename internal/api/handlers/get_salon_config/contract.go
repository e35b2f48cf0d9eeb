package get_salon_config

import (
	"context"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

type CatalogReader interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
