package domain

import "time"

// BookingRequest кандидат на бронирование, движок его не сохраняет
// Передается явно; глобального состояния выбора нет
type BookingRequest struct {
	Service *Service
	Staff   *Staff
	Room    *Room // nil - комнату выбирает распределитель

	Date       time.Time
	StartTime  string // сырое значение HH:MM, некорректное отклоняется
	CustomerID int64

	// ExcludeReservationID игнорируется при проверке пересечений (перенос бронирования)
	ExcludeReservationID *int64

	// Secondary второй участник парного бронирования
	Secondary *Participant
}

// Participant услуга и мастер одного участника
type Participant struct {
	Service *Service
	Staff   *Staff
	Room    *Room
}

// IsCouples запрос на двух человек
func (r *BookingRequest) IsCouples() bool {
	return r.Secondary != nil
}

// Primary возвращает первого участника
func (r *BookingRequest) Primary() Participant {
	return Participant{Service: r.Service, Staff: r.Staff, Room: r.Room}
}

// ForParticipant возвращает одиночный запрос для участника на то же время
func (r *BookingRequest) ForParticipant(p Participant) BookingRequest {
	return BookingRequest{
		Service:              p.Service,
		Staff:                p.Staff,
		Room:                 p.Room,
		Date:                 r.Date,
		StartTime:            r.StartTime,
		CustomerID:           r.CustomerID,
		ExcludeReservationID: r.ExcludeReservationID,
	}
}
