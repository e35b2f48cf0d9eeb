package models

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// BookingDetails бронирование с названиями из каталога
type BookingDetails struct {
	Reservation *domain.Reservation
	ServiceName string
	StaffName   string
	RoomName    string
}

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64
	Status     *string
}

// StaffDay рабочий день мастера
type StaffDay struct {
	StaffID   int64
	StaffName string
	Date      time.Time
	Working   bool
	Shift     string // "12:00-18:00" или пусто, если ограничивают только часы салона
	Schedule  string // описание недельного расписания
	Bookings  []*BookingDetails
}
