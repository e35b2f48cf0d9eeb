package staffschedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// weekOrder порядок дней для описаний (неделя с понедельника)
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// Availability результат проверки расписания мастера на дату
type Availability struct {
	OK      bool
	Reasons []string
	DayName string
}

// IsAvailable проверяет, работает ли мастер в день недели указанной даты
// Решение принимается только по данным расписания
func IsAvailable(staff *domain.Staff, date time.Time) Availability {
	dayName := date.Weekday().String()

	day, ok := staff.DayFor(date)
	if !ok || !day.Available {
		reason := fmt.Sprintf("%s is not available on %s", staff.Name, dayName)
		if desc := Describe(staff); desc != "" {
			reason = fmt.Sprintf("%s (%s)", reason, desc)
		}
		return Availability{OK: false, Reasons: []string{reason}, DayName: dayName}
	}

	return Availability{OK: true, Reasons: []string{}, DayName: dayName}
}

// WithinShift проверяет, что [start, start+duration) укладывается в смену мастера
// Если часы смены не заданы, ограничением служат рабочие часы салона
func WithinShift(staff *domain.Staff, date time.Time, start types.TimeString, durationMinutes int) (bool, string) {
	day, ok := staff.DayFor(date)
	if !ok || !day.Available || !day.HasShiftHours() {
		return true, ""
	}

	shift := domain.BusinessHours{Open: day.StartTime, Close: day.EndTime}
	if shift.Contains(start, durationMinutes) {
		return true, ""
	}

	return false, fmt.Sprintf("%s works %s-%s on %s", staff.Name, day.StartTime, day.EndTime, date.Weekday())
}

// NoticeWarning возвращает предупреждение, если мастер на вызове, а запись на сегодня
func NoticeWarning(staff *domain.Staff, date time.Time, now time.Time) (string, bool) {
	if !staff.IsOnCall() || !domain.IsSameDay(date, now) {
		return "", false
	}
	return fmt.Sprintf("%s is on call and needs at least %d minutes notice for same-day bookings",
		staff.Name, staff.MinNoticeMinutes), true
}

// Describe формирует пояснение к расписанию из самих данных расписания
//
// Примеры:
// - "works Sunday only"
// - "off Tuesday, Wednesday"
// - "works every day; on call, needs 120 minutes notice"
func Describe(staff *domain.Staff) string {
	working := make([]string, 0, len(weekOrder))
	off := make([]string, 0, len(weekOrder))

	for _, day := range weekOrder {
		if schedule, ok := staff.Schedule[day]; ok && schedule.Available {
			working = append(working, day.String())
		} else {
			off = append(off, day.String())
		}
	}

	var parts []string
	switch {
	case len(working) == 0:
		parts = append(parts, "not scheduled on any day")
	case len(working) == 1:
		parts = append(parts, fmt.Sprintf("works %s only", working[0]))
	case len(off) == 0:
		parts = append(parts, "works every day")
	default:
		parts = append(parts, "off "+strings.Join(off, ", "))
	}

	if staff.IsOnCall() {
		parts = append(parts, fmt.Sprintf("on call, needs %d minutes notice", staff.MinNoticeMinutes))
	}

	return strings.Join(parts, "; ")
}
