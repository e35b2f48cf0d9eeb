package recommend_room

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
)

// BookingLoader загружает участника и снимок бронирований дня
type BookingLoader interface {
	LoadParticipant(ctx context.Context, ids models.ParticipantIDs) (domain.Participant, error)
	LoadSnapshot(ctx context.Context, date time.Time, staffIDs ...int64) (*models.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
