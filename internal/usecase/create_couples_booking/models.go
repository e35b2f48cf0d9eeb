package create_couples_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// State состояние процесса парного бронирования
type State string

const (
	StatePreparing           State = "preparing"
	StateAvailabilityChecked State = "availability_checked"
	StateCommitting          State = "committing"
	StateSucceeded           State = "succeeded"
	StateFailed              State = "failed"
)

// Исходы одной попытки для метрик
const (
	OutcomeSucceeded        = "succeeded"
	OutcomeConflict         = "conflict"
	OutcomeAdvisoryRejected = "advisory_rejected"
	OutcomePartial          = "partial"
	OutcomeRejected         = "rejected"
	OutcomeInvalid          = "invalid"
	OutcomeError            = "error"
)

// Config параметры повторов
type Config struct {
	MaxAttempts int           // Максимум попыток (включая первую)
	BackoffStep time.Duration // Задержка перед попыткой n+1 равна n * BackoffStep
}

// Participant выбор одного участника
type Participant struct {
	ServiceID int64
	StaffID   int64
	RoomID    *int64 // nil - комнату выбирает распределитель
}

// Request модель запроса на парное бронирование
type Request struct {
	CustomerID int64
	Date       time.Time
	StartTime  string
	Primary    Participant
	Secondary  Participant
}

// LegResponse созданное бронирование одного участника
type LegResponse struct {
	BookingID       int64
	ServiceID       int64
	ServiceName     string
	StaffID         int64
	StaffName       string
	RoomID          int64
	RoomName        string
	DurationMinutes int
	Warnings        []string
}

// Response модель ответа: обе половины создаются только вместе
type Response struct {
	GroupID    uuid.UUID
	CustomerID int64
	Date       time.Time
	StartTime  types.TimeString
	Attempts   int
	Primary    LegResponse
	Secondary  LegResponse
}
