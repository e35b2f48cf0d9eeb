package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// generateStartTimes генерирует кандидатов на время начала в течение дня
// Кандидаты идут от открытия с шагом step, услуга должна закончиться до закрытия.
// Для сегодняшней даты прошедшие времена отбрасываются
func generateStartTimes(
	hours domain.BusinessHours,
	durationMinutes int,
	step int,
	requestDate time.Time,
	now time.Time,
) []types.TimeString {
	// Шаг 1: Все времена на сетке в рабочих часах
	all := hours.GridStarts(durationMinutes, step)

	// Шаг 2: Если дата бронирования НЕ сегодня - возвращаем все
	if !domain.IsSameDay(requestDate, now) {
		return all
	}

	// Шаг 3: Сегодня оставляем только времена, которые еще не наступили
	current := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(all))
	for _, start := range all {
		if !start.IsBefore(current) {
			upcoming = append(upcoming, start)
		}
	}

	return upcoming
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date time.Time, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(today)
}
