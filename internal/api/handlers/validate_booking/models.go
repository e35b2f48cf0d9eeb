package validate_booking

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	validateBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/validate_booking"
)

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	ServiceID            int64  `json:"serviceId"`
	StaffID              int64  `json:"staffId"`
	RoomID               *int64 `json:"roomId,omitempty"`
	BookingDate          string `json:"bookingDate"` // "2025-10-15"
	StartTime            string `json:"startTime"`   // "10:00"
	ExcludeReservationID *int64 `json:"excludeReservationId,omitempty"`
}

// ValidateBookingResponse HTTP response model
type ValidateBookingResponse struct {
	*handlers.ValidationResultResponse
	RoomID *int64 `json:"roomId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Время начала передается как есть: некорректное значение вернется ошибкой проверки
func (r *ValidateBookingRequest) ToUseCaseRequest() (*validateBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &validateBooking.Request{
		ServiceID:            r.ServiceID,
		StaffID:              r.StaffID,
		RoomID:               r.RoomID,
		Date:                 bookingDate,
		StartTime:            r.StartTime,
		ExcludeReservationID: r.ExcludeReservationID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateBooking.Response) *ValidateBookingResponse {
	return &ValidateBookingResponse{
		ValidationResultResponse: handlers.FromValidationResult(resp.Result),
		RoomID:                   resp.RoomID,
	}
}
