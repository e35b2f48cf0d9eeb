package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// SingleCommit команда атомарной фиксации одиночного бронирования
type SingleCommit struct {
	ServiceID       int64
	StaffID         int64
	RoomID          int64
	CustomerID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
}

// CouplesLeg одна половина парного бронирования
type CouplesLeg struct {
	ServiceID       int64
	StaffID         int64
	RoomID          int64
	DurationMinutes int
}

// CouplesCommit команда фиксации двух бронирований как одной операции
type CouplesCommit struct {
	GroupID    uuid.UUID
	Primary    CouplesLeg
	Secondary  CouplesLeg
	CustomerID int64
	Date       time.Time
	StartTime  types.TimeString
}

// Legs возвращает обе половины в порядке primary, secondary
func (c CouplesCommit) Legs() []CouplesLeg {
	return []CouplesLeg{c.Primary, c.Secondary}
}

// LegResult результат фиксации одной половины
type LegResult struct {
	BookingID    int64
	RoomID       int64
	Success      bool
	ErrorMessage string

	// Conflict - половина отклонена из-за занятого мастера или комнаты
	Conflict bool
}

// AdvisoryQuery предварительная (неавторитетная) проверка доступности
type AdvisoryQuery struct {
	StaffIDs        []int64
	RoomIDs         []int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
}

// AdvisoryResult ответ предварительной проверки
type AdvisoryResult struct {
	IsAvailable  bool
	ErrorMessage string
}
