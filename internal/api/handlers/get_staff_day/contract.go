package get_staff_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/service/reservations/models"
)

type BookingService interface {
	GetStaffDay(ctx context.Context, staffID int64, date time.Time) (*models.StaffDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
