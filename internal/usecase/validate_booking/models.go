package validate_booking

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// Request модель запроса на проверку бронирования
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   int64     // ID мастера
	RoomID    *int64    // ID комнаты; nil - комнату выбирает распределитель
	Date      time.Time // Дата бронирования (без времени)
	StartTime string    // Время начала HH:MM; некорректное значение попадает в ошибки проверки

	// ExcludeReservationID бронирование, которое переносится (не считается пересечением)
	ExcludeReservationID *int64
}

// Response результат проверки
type Response struct {
	Result *domain.ValidationResult

	// RoomID комната, для которой выполнена проверка (выбранная или назначенная)
	RoomID *int64
}
