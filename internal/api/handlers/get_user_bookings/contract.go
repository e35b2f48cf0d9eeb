package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-SpaBooking/internal/service/reservations/models"
)

type BookingService interface {
	GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) ([]*models.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
