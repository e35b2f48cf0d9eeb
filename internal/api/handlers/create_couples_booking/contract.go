package create_couples_booking

import (
	"context"

	createCouplesBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_couples_booking"
)

type CreateCouplesBookingUseCase interface {
	Execute(ctx context.Context, req *createCouplesBooking.Request) (*createCouplesBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
