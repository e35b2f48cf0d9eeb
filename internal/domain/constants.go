package domain

import "time"

// Сетка времени и рабочие часы по умолчанию
const (
	GridStepMinutes  = 15
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "20:00"
)

// Параметры парного бронирования по умолчанию
const (
	DefaultCouplesMaxAttempts = 3
	DefaultCouplesBackoffStep = 1000 * time.Millisecond
)

// Ограничения входных данных
const (
	MinServiceDurationMinutes = GridStepMinutes
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNoticeMinutes          = 10080
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие ресурсы
// Используется для фильтрации при проверке пересечений
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
