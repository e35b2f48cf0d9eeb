package create_couples_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
)

// ReservationRepository предварительная проверка и авторитетная фиксация парного бронирования
type ReservationRepository interface {
	CheckAvailabilityAdvisory(ctx context.Context, query domain.AdvisoryQuery) (*domain.AdvisoryResult, error)
	CommitCouplesBooking(ctx context.Context, cmd domain.CouplesCommit) ([]domain.LegResult, error)
}

// BookingLoader загружает участников и снимок бронирований дня
type BookingLoader interface {
	LoadParticipant(ctx context.Context, ids models.ParticipantIDs) (domain.Participant, error)
	LoadSnapshot(ctx context.Context, date time.Time, staffIDs ...int64) (*models.Snapshot, error)
}

// BookingValidator проверка бронирования
type BookingValidator interface {
	Validate(in bookingvalidator.Input) (*domain.ValidationResult, error)
}

// MetricsCollector учет проверок и исходов попыток
type MetricsCollector interface {
	ObserveValidation(valid bool)
	ObserveCouplesAttempt(outcome string)
	ObserveCommitConflict(kind string)
}

// Sleeper ожидание между попытками (в тестах подменяется)
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
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

// RealSleeper ждет по таймеру и прерывается при отмене контекста
type RealSleeper struct{}

// Sleep ждет d или до отмены ctx
func (s *RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
