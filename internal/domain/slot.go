package domain

import "github.com/m04kA/SMC-SpaBooking/pkg/types"

// AvailableSlot время начала, доступное для бронирования
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	RoomID          int64 // Комната, которую выберет распределитель
	RoomName        string
	Warnings        []string
}

// HasWarnings бронирование слота сопровождается предупреждениями
func (s *AvailableSlot) HasWarnings() bool {
	return len(s.Warnings) > 0
}
