package bookingvalidator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/capability"
	"github.com/m04kA/SMC-SpaBooking/internal/service/conflicts"
	"github.com/m04kA/SMC-SpaBooking/internal/service/roomassignment"
	"github.com/m04kA/SMC-SpaBooking/internal/service/staffschedule"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// ErrMissingReference возвращается, когда вызывающий не передал услугу или мастера
// Это ошибка программиста, а не нарушение бизнес-правил
var ErrMissingReference = errors.New("bookingvalidator: required reference is missing")

// Input данные для одной проверки
type Input struct {
	Request domain.BookingRequest

	// Rooms все комнаты салона: для рекомендации и подсказок об оборудовании
	Rooms []*domain.Room

	// Reservations снимок бронирований на день (для комнаты и мастера)
	Reservations []*domain.Reservation

	// Now текущее время для предупреждения о минимальном сроке записи
	Now time.Time

	// ExcludeRoomIDs комнаты, которые нельзя выбирать автоматически (не подходят второй половине парного бронирования)
	ExcludeRoomIDs []int64
}

// Validator собирает все проверки в один вердикт
// Не хранит изменяемого состояния и безопасен для конкурентного использования
type Validator struct {
	hours domain.BusinessHours
}

// New создает валидатор с рабочими часами салона
func New(hours domain.BusinessHours) *Validator {
	return &Validator{hours: hours}
}

// BusinessHours возвращает рабочие часы валидатора
func (v *Validator) BusinessHours() domain.BusinessHours {
	return v.hours
}

// Validate проверяет бронирование и возвращает все ошибки и предупреждения сразу
//
// Порядок: рабочие часы → квалификация мастера → расписание мастера →
// возможности комнаты → пересечения по комнате и по мастеру → предупреждения.
// Без комнаты в запросе комнату выбирает распределитель (RecommendedRoomID)
func (v *Validator) Validate(in Input) (*domain.ValidationResult, error) {
	req := in.Request
	if err := checkReferences(req); err != nil {
		return nil, err
	}

	result := domain.NewValidationResult()
	service, staff := req.Service, req.Staff

	// 0. Входные данные: некорректное значение отклоняется, а не угадывается
	start, startErr := types.NewTimeStringFromString(req.StartTime)
	if startErr != nil {
		result.AddError(domain.IssueInvalidInput, "invalid start time %q, expected HH:MM", req.StartTime)
	}

	dateOK := !req.Date.IsZero()
	if !dateOK {
		result.AddError(domain.IssueInvalidInput, "booking date is required")
	}

	categoryOK := service.Category.IsValid()
	if !categoryOK {
		result.AddError(domain.IssueInvalidInput, "service %s has unknown category %q", service.Name, service.Category)
	}

	durationOK := service.DurationMinutes > 0 && service.DurationMinutes <= domain.MaxServiceDurationMinutes
	if !durationOK {
		result.AddError(domain.IssueInvalidInput, "service %s has invalid duration %d minutes",
			service.Name, service.DurationMinutes)
	}

	timeOK := startErr == nil && durationOK

	// Рекомендация распределителя нужна и для выбора комнаты, и для предупреждения
	var resolution *roomassignment.Resolution
	if timeOK && dateOK && categoryOK {
		res := v.resolve(in, start)
		resolution = &res
	}

	room := req.Room
	if room == nil && resolution != nil {
		if resolution.Found() {
			room = resolution.Room
		} else {
			code := domain.IssueRoomConflict
			if len(capability.FilterRooms(in.Rooms, service)) == 0 {
				code = domain.IssueRoomCapability
			}
			for _, msg := range resolution.Errors {
				result.AddError(code, "%s", msg)
			}
		}
	}

	// 1. Рабочие часы
	if timeOK && !v.hours.Contains(start, service.DurationMinutes) {
		result.AddError(domain.IssueBusinessHours, "%s for %d minutes is outside business hours %s-%s",
			start, service.DurationMinutes, v.hours.Open, v.hours.Close)
	}

	// 2. Квалификация мастера
	if !staff.IsActive {
		result.AddError(domain.IssueInactiveResource, "%s is not active", staff.Name)
	}
	if categoryOK {
		for _, reason := range capability.StaffCanPerform(staff, service).Reasons {
			result.AddError(domain.IssueStaffCapability, "%s", reason)
		}
	}

	// 3. Расписание мастера
	if dateOK {
		availability := staffschedule.IsAvailable(staff, req.Date)
		for _, reason := range availability.Reasons {
			result.AddError(domain.IssueStaffSchedule, "%s", reason)
		}
		if availability.OK && timeOK {
			if ok, reason := staffschedule.WithinShift(staff, req.Date, start, service.DurationMinutes); !ok {
				result.AddError(domain.IssueStaffShift, "%s", reason)
			}
		}
	}

	// 4. Возможности комнаты
	if room != nil {
		if !room.IsActive {
			result.AddError(domain.IssueInactiveResource, "%s is not active", room.Name)
		}
		if categoryOK || service.NeedsBodyScrubRoom() || service.NeedsCouplesRoom() {
			for _, reason := range capability.RoomCanHost(room, service).Reasons {
				result.AddError(domain.IssueRoomCapability, "%s%s", reason, equipmentHint(service, room, in.Rooms))
			}
		}
	}

	// 5. Пересечения по комнате и по мастеру
	if timeOK {
		v.checkConflicts(result, in, room, start)
	}

	// 6. Предупреждения
	if resolution != nil && resolution.Found() {
		v.checkRecommendation(result, *resolution, room)
	}
	if dateOK && !in.Now.IsZero() {
		if msg, warn := staffschedule.NoticeWarning(staff, req.Date, in.Now); warn {
			result.AddWarning(domain.IssueMinNotice, "%s", msg)
		}
	}

	return result, nil
}

func (v *Validator) checkConflicts(result *domain.ValidationResult, in Input, room *domain.Room, start types.TimeString) {
	req := in.Request

	type check struct {
		resourceType domain.ResourceType
		resourceID   int64
		name         string
		code         domain.IssueCode
	}

	checks := make([]check, 0, 2)
	if room != nil {
		checks = append(checks, check{domain.ResourceRoom, room.ID, room.Name, domain.IssueRoomConflict})
	}
	checks = append(checks, check{domain.ResourceStaff, req.Staff.ID, req.Staff.Name, domain.IssueStaffConflict})

	for _, c := range checks {
		found, err := conflicts.FindAll(in.Reservations, conflicts.Query{
			ResourceType:    c.resourceType,
			ResourceID:      c.resourceID,
			Date:            req.Date,
			StartTime:       start,
			DurationMinutes: req.Service.DurationMinutes,
			ExcludeID:       req.ExcludeReservationID,
		})
		if err != nil {
			result.AddError(domain.IssueInvalidInput, "cannot check %s availability: %v", c.resourceType, err)
			continue
		}

		for _, r := range found {
			end, _ := r.EndTime()
			result.AddError(c.code, "%s is already booked %s-%s", c.name, r.StartTime, end)
			result.AddConflict(r)
		}
	}
}

func (v *Validator) resolve(in Input, start types.TimeString) roomassignment.Resolution {
	req := in.Request

	rooms := in.Rooms
	if len(rooms) == 0 && req.Room != nil {
		rooms = []*domain.Room{req.Room}
	}

	return roomassignment.Resolve(roomassignment.Request{
		Service:              req.Service,
		Staff:                req.Staff,
		CandidateRooms:       rooms,
		Date:                 req.Date,
		StartTime:            start,
		Reservations:         in.Reservations,
		ExcludeReservationID: req.ExcludeReservationID,
		ExcludeRoomIDs:       in.ExcludeRoomIDs,
	})
}

// checkRecommendation сравнивает выбранную комнату с лучшей по мнению распределителя
// Отличие - предупреждение, а не ошибка: пользователь вправе выбрать другую подходящую комнату
func (v *Validator) checkRecommendation(result *domain.ValidationResult, resolution roomassignment.Resolution, room *domain.Room) {
	recommendedID := resolution.Room.ID
	result.RecommendedRoomID = &recommendedID

	if room == nil || recommendedID == room.ID {
		return
	}
	if result.HasError(domain.IssueRoomCapability) || result.HasError(domain.IssueRoomConflict) ||
		result.HasError(domain.IssueInactiveResource) {
		return
	}

	result.AddWarning(domain.IssueSuboptimalRoom, "%s is recommended (%s) instead of %s",
		resolution.Room.Name, resolution.Reason, room.Name)
}

// equipmentHint подсказывает, где есть оборудование для скраба
func equipmentHint(service *domain.Service, room *domain.Room, rooms []*domain.Room) string {
	if !service.NeedsBodyScrubRoom() || room.HasBodyScrubEquipment {
		return ""
	}

	names := make([]string, 0, 1)
	for _, r := range rooms {
		if r != nil && r.IsActive && r.HasBodyScrubEquipment {
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "; equipped rooms: " + strings.Join(names, ", ")
}

func checkReferences(req domain.BookingRequest) error {
	switch {
	case req.Service == nil:
		return fmt.Errorf("%w: service", ErrMissingReference)
	case req.Staff == nil:
		return fmt.Errorf("%w: staff", ErrMissingReference)
	}
	return nil
}
