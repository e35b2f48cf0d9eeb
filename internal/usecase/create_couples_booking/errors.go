package create_couples_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга одного из участников не найдена
	ErrServiceNotFound = errors.New("create_couples_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер одного из участников не найден
	ErrStaffNotFound = errors.New("create_couples_booking: staff not found")

	// ErrRoomNotFound возвращается, когда выбранная комната не найдена
	ErrRoomNotFound = errors.New("create_couples_booking: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_couples_booking: invalid input data")

	// ErrValidationFailed возвращается, когда хотя бы один участник не прошел проверку
	// Фиксация в этом случае не выполняется
	ErrValidationFailed = errors.New("create_couples_booking: booking is not valid")

	// ErrSlotNotAvailable возвращается, когда предварительная проверка нашла слот занятым
	ErrSlotNotAvailable = errors.New("create_couples_booking: slot is not available")

	// ErrCommitRejected возвращается, когда хранилище отклонило обе половины не из-за гонки
	ErrCommitRejected = errors.New("create_couples_booking: commit rejected")

	// ErrPartialCommit возвращается, когда хранилище сообщило об успехе только одной половины
	ErrPartialCommit = errors.New("create_couples_booking: partial commit")

	// ErrAttemptsExhausted возвращается, когда все попытки проиграли гонку
	ErrAttemptsExhausted = errors.New("create_couples_booking: attempts exhausted")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_couples_booking: internal error")
)

// CouplesError терминальная ошибка парного бронирования
// Несет состояние, в котором процесс остановился, и результаты проверок обоих участников
type CouplesError struct {
	State    State
	Attempts int
	Err      error

	Primary   *domain.ValidationResult
	Secondary *domain.ValidationResult
	Legs      []domain.LegResult
}

func (e *CouplesError) Error() string {
	return fmt.Sprintf("couples booking failed at %s after %d attempt(s): %v", e.State, e.Attempts, e.Err)
}

func (e *CouplesError) Unwrap() error {
	return e.Err
}
