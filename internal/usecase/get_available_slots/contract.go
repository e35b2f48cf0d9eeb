package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
)

// BookingLoader загружает участника и снимок бронирований дня
type BookingLoader interface {
	LoadParticipant(ctx context.Context, ids models.ParticipantIDs) (domain.Participant, error)
	LoadSnapshot(ctx context.Context, date time.Time, staffIDs ...int64) (*models.Snapshot, error)
}

// BookingValidator проверка бронирования и рабочие часы салона
type BookingValidator interface {
	Validate(in bookingvalidator.Input) (*domain.ValidationResult, error)
	BusinessHours() domain.BusinessHours
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
