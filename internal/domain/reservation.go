package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// IsValid проверяет, что статус известен
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ResourceType тип ресурса, который занимает бронирование
type ResourceType string

const (
	ResourceRoom  ResourceType = "room"
	ResourceStaff ResourceType = "staff"
)

// Reservation существующее бронирование (только чтение для движка)
type Reservation struct {
	ID              int64
	RoomID          int64
	StaffID         int64
	ServiceID       int64
	CustomerID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          ReservationStatus

	// CouplesGroupID связывает две половины парного бронирования
	CouplesGroupID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled бронирование больше не занимает ресурсы
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// EndTime возвращает время окончания (полуинтервал [start, end))
func (r *Reservation) EndTime() (types.TimeString, error) {
	return EndTime(r.StartTime, r.DurationMinutes)
}

// ResourceID возвращает ID ресурса указанного типа
func (r *Reservation) ResourceID(resourceType ResourceType) int64 {
	if resourceType == ResourceStaff {
		return r.StaffID
	}
	return r.RoomID
}

// IsOnDate бронирование относится к данному дню
func (r *Reservation) IsOnDate(date time.Time) bool {
	return IsSameDay(r.Date, date)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CanBeCancelled визит еще не начался
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// ParseReservationStatus разбирает статус из строки запроса
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	return status, status.IsValid()
}
