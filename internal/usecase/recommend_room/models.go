package recommend_room

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// Request модель запроса рекомендации комнаты
type Request struct {
	ServiceID int64
	StaffID   int64
	Date      time.Time
	StartTime string
}

// Response лучшая свободная комната и остальные в порядке предпочтения
type Response struct {
	Room         *domain.Room
	Reason       string
	Alternatives []*domain.Room
}
