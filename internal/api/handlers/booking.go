package handlers

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/reservations/models"
)

// BookingDetailsResponse сохраненное бронирование
type BookingDetailsResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StaffID         int64   `json:"staffId"`
	StaffName       string  `json:"staffName"`
	RoomID          int64   `json:"roomId"`
	RoomName        string  `json:"roomName"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CouplesGroupID  *string `json:"couplesGroupId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromBookingDetails конвертирует бронирование сервиса в HTTP модель
func FromBookingDetails(d *models.BookingDetails) BookingDetailsResponse {
	r := d.Reservation

	resp := BookingDetailsResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		ServiceID:       r.ServiceID,
		ServiceName:     d.ServiceName,
		StaffID:         r.StaffID,
		StaffName:       d.StaffName,
		RoomID:          r.RoomID,
		RoomName:        d.RoomName,
		BookingDate:     r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		DurationMinutes: r.DurationMinutes,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}

	if end, err := r.EndTime(); err == nil {
		resp.EndTime = end.String()
	}
	if r.CouplesGroupID != nil {
		groupID := r.CouplesGroupID.String()
		resp.CouplesGroupID = &groupID
	}

	return resp
}

// FromBookingDetailsList конвертирует список; пустой список сериализуется как []
func FromBookingDetailsList(list []*models.BookingDetails) []BookingDetailsResponse {
	result := make([]BookingDetailsResponse, len(list))
	for i, d := range list {
		result[i] = FromBookingDetails(d)
	}
	return result
}
