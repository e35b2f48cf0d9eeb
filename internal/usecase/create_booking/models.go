package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64     // ID клиента (из X-User-ID)
	ServiceID  int64     // ID услуги
	StaffID    int64     // ID мастера
	RoomID     *int64    // ID комнаты; nil - комнату выбирает распределитель
	Date       time.Time // Дата бронирования (без времени)
	StartTime  string    // Время начала HH:MM
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	CustomerID      int64            // ID клиента
	ServiceID       int64            // ID услуги
	StaffID         int64            // ID мастера
	RoomID          int64            // ID комнаты
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Денормализованные данные для ответа
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	StaffName    string  // Имя мастера
	RoomName     string  // Название комнаты

	// Warnings непрерывающие предупреждения проверки
	Warnings []string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
