package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// ErrInvalidBusinessHours возвращается при некорректных рабочих часах
var ErrInvalidBusinessHours = errors.New("domain: invalid business hours")

// BusinessHours ежедневное окно работы салона
type BusinessHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// DefaultBusinessHours рабочие часы по умолчанию
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{Open: DefaultOpenTime, Close: DefaultCloseTime}
}

// Validate проверяет, что окно задано и не пустое
func (h BusinessHours) Validate() error {
	if err := h.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidBusinessHours, err)
	}
	if err := h.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidBusinessHours, err)
	}
	if !h.Open.IsBefore(h.Close) {
		return fmt.Errorf("%w: open %s must be before close %s", ErrInvalidBusinessHours, h.Open, h.Close)
	}
	return nil
}

// Contains проверяет, что [start, start+duration) целиком внутри рабочих часов
// Бронирование может заканчиваться ровно в момент закрытия
func (h BusinessHours) Contains(start types.TimeString, durationMinutes int) bool {
	end, err := EndTime(start, durationMinutes)
	if err != nil {
		return false
	}
	return !start.IsBefore(h.Open) && !end.IsAfter(h.Close)
}

// GridStarts возвращает все времена начала на сетке step, при которых
// услуга длительностью durationMinutes укладывается в рабочие часы
func (h BusinessHours) GridStarts(durationMinutes, step int) []types.TimeString {
	starts := make([]types.TimeString, 0)
	if step <= 0 || durationMinutes <= 0 {
		return starts
	}

	for m := h.Open.Minutes(); m+durationMinutes <= h.Close.Minutes(); m += step {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		starts = append(starts, ts)
	}

	return starts
}

// EndTime возвращает start + duration с точностью до минуты
func EndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	if durationMinutes <= 0 {
		return "", fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}
	return start.AddMinutes(durationMinutes)
}
