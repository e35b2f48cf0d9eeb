package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SpaBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	ServiceID int64           `json:"serviceId"`
	StaffID   int64           `json:"staffId"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	RoomID          int64    `json:"roomId"`
	RoomName        string   `json:"roomName"`
	Warnings        []string `json:"warnings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		warnings := slot.Warnings
		if warnings == nil {
			warnings = []string{}
		}

		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			RoomID:          slot.RoomID,
			RoomName:        slot.RoomName,
			Warnings:        warnings,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		StaffID:   resp.StaffID,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(serviceID, staffID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
	}, nil
}
