package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// ID клиента берется из X-User-ID, а не из тела
type CreateBookingRequest struct {
	ServiceID   int64  `json:"serviceId"`
	StaffID     int64  `json:"staffId"`
	RoomID      *int64 `json:"roomId,omitempty"` // без комнаты ее выбирает распределитель
	BookingDate string `json:"bookingDate"`      // "2025-10-15"
	StartTime   string `json:"startTime"`        // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	CustomerID      int64    `json:"customerId"`
	ServiceID       int64    `json:"serviceId"`
	StaffID         int64    `json:"staffId"`
	RoomID          int64    `json:"roomId"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	ServiceName     string   `json:"serviceName"`
	ServicePrice    float64  `json:"servicePrice"`
	StaffName       string   `json:"staffName"`
	RoomName        string   `json:"roomName"`
	Warnings        []string `json:"warnings"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: customerID,
		ServiceID:  r.ServiceID,
		StaffID:    r.StaffID,
		RoomID:     r.RoomID,
		Date:       bookingDate,
		StartTime:  r.StartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		RoomID:          resp.RoomID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		StaffName:       resp.StaffName,
		RoomName:        resp.RoomName,
		Warnings:        warnings,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
