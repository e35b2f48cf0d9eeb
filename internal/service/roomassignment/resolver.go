package roomassignment

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/service/capability"
	"github.com/m04kA/SMC-SpaBooking/internal/service/conflicts"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// Причины выбора комнаты
const (
	ReasonDefaultRoom = "staff member's default room"
	ReasonOnlyRoom    = "only %s room available"
	ReasonTightest    = "closest capability match for %s"
	ReasonLowestID    = "first available %s room"
)

// Request входные данные распределителя
type Request struct {
	Service        *domain.Service
	Staff          *domain.Staff
	CandidateRooms []*domain.Room
	Date           time.Time
	StartTime      types.TimeString
	Reservations   []*domain.Reservation

	// ExcludeReservationID игнорируется при проверке занятости (перенос)
	ExcludeReservationID *int64
	// ExcludeRoomIDs комнаты, не подходящие второй половине парного бронирования
	ExcludeRoomIDs []int64
}

// Resolution результат распределения
type Resolution struct {
	Room   *domain.Room // nil - подходящей комнаты нет
	Reason string
	Errors []string

	// Ranked свободные подходящие комнаты в порядке предпочтения
	Ranked []*domain.Room
}

// Found комната выбрана
func (r *Resolution) Found() bool {
	return r.Room != nil
}

// Resolve выбирает лучшую комнату для (услуга, мастер, дата, время)
//
// Алгоритм:
// 1. Оставляем активные комнаты, способные принять услугу
// 2. Исключаем комнаты с пересекающимися бронированиями
// 3. Ранжируем: комната мастера по умолчанию, затем наименьшее число лишних
// возможностей (универсальные комнаты остаются для универсальных услуг), затем меньший ID
func Resolve(req Request) Resolution {
	class := capability.RequiredRoomClass(req.Service)
	classDesc := class.Describe(req.Service.Category)

	// 1. Фильтр по возможностям
	capable := make([]*domain.Room, 0, len(req.CandidateRooms))
	for _, room := range capability.FilterRooms(req.CandidateRooms, req.Service) {
		if slices.Contains(req.ExcludeRoomIDs, room.ID) {
			continue
		}
		capable = append(capable, room)
	}

	if len(capable) == 0 {
		return Resolution{
			Errors: []string{fmt.Sprintf("no active %s room can host %s", classDesc, req.Service.Name)},
			Ranked: []*domain.Room{},
		}
	}

	// 2. Фильтр по занятости
	free := make([]*domain.Room, 0, len(capable))
	for _, room := range capable {
		busy, err := conflicts.HasOverlap(req.Reservations, conflicts.Query{
			ResourceType:    domain.ResourceRoom,
			ResourceID:      room.ID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.Service.DurationMinutes,
			ExcludeID:       req.ExcludeReservationID,
		})
		if err != nil {
			return Resolution{
				Errors: []string{fmt.Sprintf("cannot check room availability: %v", err)},
				Ranked: []*domain.Room{},
			}
		}
		if !busy {
			free = append(free, room)
		}
	}

	if len(free) == 0 {
		return Resolution{
			Errors: []string{fmt.Sprintf("all %s rooms are booked at %s", classDesc, req.StartTime)},
			Ranked: []*domain.Room{},
		}
	}

	// 3. Ранжирование
	ranked := Rank(free, req.Service, req.Staff)
	chosen := ranked[0]

	return Resolution{
		Room:   chosen,
		Reason: reasonFor(chosen, ranked, req.Service, req.Staff, classDesc),
		Errors: []string{},
		Ranked: ranked,
	}
}

// Rank сортирует комнаты по предпочтению, не изменяя исходный слайс
func Rank(rooms []*domain.Room, service *domain.Service, staff *domain.Staff) []*domain.Room {
	ranked := slices.Clone(rooms)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		aDefault, bDefault := isDefaultRoom(staff, a), isDefaultRoom(staff, b)
		if aDefault != bDefault {
			return aDefault
		}

		aExtra, bExtra := extraneous(a, service), extraneous(b, service)
		if aExtra != bExtra {
			return aExtra < bExtra
		}

		return a.ID < b.ID
	})

	return ranked
}

// extraneous считает возможности комнаты, не нужные услуге
// Оборудование для скраба и парность тоже считаются, если услуге они не нужны
func extraneous(room *domain.Room, service *domain.Service) int {
	count := 0
	for _, c := range room.Capabilities {
		if c != service.Category {
			count++
		}
	}
	if room.HasBodyScrubEquipment && !service.NeedsBodyScrubRoom() {
		count++
	}
	if room.IsCouplesRoom && !service.NeedsCouplesRoom() {
		count++
	}
	return count
}

func isDefaultRoom(staff *domain.Staff, room *domain.Room) bool {
	return staff != nil && staff.DefaultRoomID != nil && *staff.DefaultRoomID == room.ID
}

func reasonFor(chosen *domain.Room, ranked []*domain.Room, service *domain.Service, staff *domain.Staff, classDesc string) string {
	switch {
	case isDefaultRoom(staff, chosen):
		return ReasonDefaultRoom
	case len(ranked) == 1:
		return fmt.Sprintf(ReasonOnlyRoom, classDesc)
	case extraneous(chosen, service) < extraneous(ranked[1], service):
		return fmt.Sprintf(ReasonTightest, service.Category)
	default:
		return fmt.Sprintf(ReasonLowestID, classDesc)
	}
}
