package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// Request модель запроса на получение доступных времен начала
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   int64     // ID мастера
	Date      time.Time // Дата (без времени)
}

// Response модель ответа со списком доступных времен начала
type Response struct {
	Date      time.Time              // Дата, на которую запрашивались слоты
	ServiceID int64                  // ID услуги
	StaffID   int64                  // ID мастера
	Slots     []domain.AvailableSlot // Времена, на которые бронирование пройдет проверку
}
