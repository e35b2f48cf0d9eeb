package get_staff_day

import (
	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/reservations/models"
)

// StaffDayResponse HTTP response model
type StaffDayResponse struct {
	StaffID   int64                             `json:"staffId"`
	StaffName string                            `json:"staffName"`
	Date      string                            `json:"date"`
	Working   bool                              `json:"working"`
	Shift     string                            `json:"shift,omitempty"`
	Schedule  string                            `json:"schedule"`
	Bookings  []handlers.BookingDetailsResponse `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(day *models.StaffDay) *StaffDayResponse {
	return &StaffDayResponse{
		StaffID:   day.StaffID,
		StaffName: day.StaffName,
		Date:      day.Date.Format(domain.DateFormat),
		Working:   day.Working,
		Shift:     day.Shift,
		Schedule:  day.Schedule,
		Bookings:  handlers.FromBookingDetailsList(day.Bookings),
	}
}
