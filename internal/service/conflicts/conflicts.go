package conflicts

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// Interval полуинтервал [Start, End) в минутах от начала суток
type Interval struct {
	Start int
	End   int
}

// NewInterval создает интервал из времени начала и длительности
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	end, err := domain.EndTime(start, durationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start.Minutes(), End: end.Minutes()}, nil
}

// ReservationInterval возвращает интервал существующего бронирования
func ReservationInterval(r *domain.Reservation) (Interval, error) {
	return NewInterval(r.StartTime, r.DurationMinutes)
}

// Overlaps проверяет пересечение полуинтервалов
// Граничные случаи (конец одного == начало другого) пересечением не считаются
//
// Примеры:
// - 14:00-14:45 и 14:30-15:00 → ЕСТЬ пересечение
// - 14:00-14:45 и 14:45-15:15 → НЕТ пересечения (граничат)
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Query параметры поиска пересечений для одного ресурса
type Query struct {
	ResourceType    domain.ResourceType
	ResourceID      int64
	Date            time.Time // нулевое значение - бронирования уже отфильтрованы по дню
	StartTime       types.TimeString
	DurationMinutes int
	ExcludeID       *int64 // бронирование, которое переносится
}

// FindOverlap возвращает первое (самое раннее) неотмененное бронирование ресурса,
// пересекающееся с [start, start+duration), или nil
func FindOverlap(reservations []*domain.Reservation, q Query) (*domain.Reservation, error) {
	found, err := FindAll(reservations, q)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// FindAll возвращает все пересекающиеся бронирования ресурса,
// отсортированные по времени начала и ID
func FindAll(reservations []*domain.Reservation, q Query) ([]*domain.Reservation, error) {
	candidate, err := NewInterval(q.StartTime, q.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate interval: %w", err)
	}

	found := make([]*domain.Reservation, 0)

	for _, r := range reservations {
		if r == nil || r.IsCancelled() {
			continue
		}
		if r.ResourceID(q.ResourceType) != q.ResourceID {
			continue
		}
		if q.ExcludeID != nil && r.ID == *q.ExcludeID {
			continue
		}
		if !q.Date.IsZero() && !r.IsOnDate(q.Date) {
			continue
		}

		existing, err := ReservationInterval(r)
		if err != nil {
			// Если не можем вычислить конец бронирования, пропускаем
			continue
		}

		if candidate.Overlaps(existing) {
			found = append(found, r)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		si, sj := found[i].StartTime.Minutes(), found[j].StartTime.Minutes()
		if si != sj {
			return si < sj
		}
		return found[i].ID < found[j].ID
	})

	return found, nil
}

// HasOverlap сокращение для проверки занятости ресурса
func HasOverlap(reservations []*domain.Reservation, q Query) (bool, error) {
	found, err := FindOverlap(reservations, q)
	if err != nil {
		return false, err
	}
	return found != nil, nil
}
