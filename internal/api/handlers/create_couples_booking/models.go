package create_couples_booking

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	createCouplesBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_couples_booking"
)

// ParticipantRequest выбор одного участника
type ParticipantRequest struct {
	ServiceID int64  `json:"serviceId"`
	StaffID   int64  `json:"staffId"`
	RoomID    *int64 `json:"roomId,omitempty"`
}

// CreateCouplesBookingRequest HTTP request model
type CreateCouplesBookingRequest struct {
	BookingDate string             `json:"bookingDate"` // "2025-10-15"
	StartTime   string             `json:"startTime"`   // "10:00"
	Primary     ParticipantRequest `json:"primary"`
	Secondary   ParticipantRequest `json:"secondary"`
}

// LegResponse бронирование одного участника
type LegResponse struct {
	BookingID       int64    `json:"bookingId"`
	ServiceID       int64    `json:"serviceId"`
	ServiceName     string   `json:"serviceName"`
	StaffID         int64    `json:"staffId"`
	StaffName       string   `json:"staffName"`
	RoomID          int64    `json:"roomId"`
	RoomName        string   `json:"roomName"`
	DurationMinutes int      `json:"durationMinutes"`
	Warnings        []string `json:"warnings"`
}

// CouplesBookingResponse HTTP response model
type CouplesBookingResponse struct {
	GroupID     string      `json:"groupId"`
	CustomerID  int64       `json:"customerId"`
	BookingDate string      `json:"bookingDate"`
	StartTime   string      `json:"startTime"`
	Attempts    int         `json:"attempts"`
	Primary     LegResponse `json:"primary"`
	Secondary   LegResponse `json:"secondary"`
}

// ValidationDetails результаты проверки обоих участников
type ValidationDetails struct {
	Primary   *handlers.ValidationResultResponse `json:"primary,omitempty"`
	Secondary *handlers.ValidationResultResponse `json:"secondary,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateCouplesBookingRequest) ToUseCaseRequest(customerID int64) (*createCouplesBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createCouplesBooking.Request{
		CustomerID: customerID,
		Date:       bookingDate,
		StartTime:  r.StartTime,
		Primary: createCouplesBooking.Participant{
			ServiceID: r.Primary.ServiceID,
			StaffID:   r.Primary.StaffID,
			RoomID:    r.Primary.RoomID,
		},
		Secondary: createCouplesBooking.Participant{
			ServiceID: r.Secondary.ServiceID,
			StaffID:   r.Secondary.StaffID,
			RoomID:    r.Secondary.RoomID,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCouplesBooking.Response) *CouplesBookingResponse {
	return &CouplesBookingResponse{
		GroupID:     resp.GroupID.String(),
		CustomerID:  resp.CustomerID,
		BookingDate: resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Attempts:    resp.Attempts,
		Primary:     fromLeg(resp.Primary),
		Secondary:   fromLeg(resp.Secondary),
	}
}

func fromLeg(leg createCouplesBooking.LegResponse) LegResponse {
	warnings := leg.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return LegResponse{
		BookingID:       leg.BookingID,
		ServiceID:       leg.ServiceID,
		ServiceName:     leg.ServiceName,
		StaffID:         leg.StaffID,
		StaffName:       leg.StaffName,
		RoomID:          leg.RoomID,
		RoomName:        leg.RoomName,
		DurationMinutes: leg.DurationMinutes,
		Warnings:        warnings,
	}
}
