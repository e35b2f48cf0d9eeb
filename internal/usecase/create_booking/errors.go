package create_booking

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrValidationFailed возвращается, когда бронирование не прошло проверку
	// Подробности в *ValidationError
	ErrValidationFailed = errors.New("create_booking: booking is not valid")

	// ErrSlotNotAvailable возвращается, когда слот заняли между проверкой и фиксацией
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError несет результат проверки, из-за которого бронирование отклонено
type ValidationError struct {
	Result *domain.ValidationResult
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Result.ErrorMessages(), "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
