package models

import "github.com/m04kA/SMC-SpaBooking/internal/domain"

// ParticipantIDs идентификаторы выбора одного участника
type ParticipantIDs struct {
	ServiceID int64
	StaffID   int64
	RoomID    *int64 // nil - комнату выбирает распределитель
}

// Snapshot состояние салона на дату: все комнаты и бронирования по ним и по мастерам
type Snapshot struct {
	Rooms        []*domain.Room
	Reservations []*domain.Reservation
}

// RoomByID возвращает комнату снимка или nil
func (s *Snapshot) RoomByID(id int64) *domain.Room {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}
