package capability

import (
	"fmt"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
)

// Result итог проверки соответствия
type Result struct {
	OK      bool
	Reasons []string
}

func ok() Result {
	return Result{OK: true, Reasons: []string{}}
}

func fail(format string, args ...interface{}) Result {
	return Result{OK: false, Reasons: []string{fmt.Sprintf(format, args...)}}
}

// RoomClass класс комнаты, который требуется услуге
type RoomClass string

const (
	ClassCouplesScrub RoomClass = "couples_scrub"
	ClassBodyScrub    RoomClass = "body_scrub"
	ClassCouples      RoomClass = "couples"
	ClassGeneric      RoomClass = "generic"
)

// RequiredRoomClass определяет класс комнаты для услуги
// Оборудование для скраба важнее требования парной комнаты
func RequiredRoomClass(service *domain.Service) RoomClass {
	switch {
	case service.NeedsBodyScrubRoom() && service.NeedsCouplesRoom():
		return ClassCouplesScrub
	case service.NeedsBodyScrubRoom():
		return ClassBodyScrub
	case service.NeedsCouplesRoom():
		return ClassCouples
	default:
		return ClassGeneric
	}
}

// Describe возвращает человекочитаемое описание класса
func (c RoomClass) Describe(category domain.Category) string {
	switch c {
	case ClassCouplesScrub:
		return "couples-capable, scrub-equipped"
	case ClassBodyScrub:
		return "scrub-equipped"
	case ClassCouples:
		return "couples-capable"
	default:
		return fmt.Sprintf("%s-capable", category)
	}
}

// StaffCanPerform проверяет квалификацию мастера по категории услуги
func StaffCanPerform(staff *domain.Staff, service *domain.Service) Result {
	if !service.Category.IsValid() {
		return fail("service %s has unknown category %q", service.Name, service.Category)
	}
	if !staff.CanPerform(service.Category) {
		return fail("%s is not qualified for %s services", staff.Name, service.Category)
	}
	return ok()
}

// RoomCanHost проверяет, может ли комната принять услугу
//
// Порядок правил:
// 1. Скраб (флаг услуги или категория body_scrub) - только комната с оборудованием
// 2. Парная услуга или пакет - только парная комната
// 3. Иначе категория должна входить в возможности комнаты
//
// Для парного скраба выполняются оба требования: комната и с оборудованием, и парная
func RoomCanHost(room *domain.Room, service *domain.Service) Result {
	if service.NeedsBodyScrubRoom() {
		if !room.HasBodyScrubEquipment {
			return fail("%s has no body scrub equipment required by %s", room.Name, service.Name)
		}
		if service.NeedsCouplesRoom() && !room.IsCouplesRoom {
			return fail("%s is not a couples room required by %s", room.Name, service.Name)
		}
		return ok()
	}

	if service.NeedsCouplesRoom() {
		if !room.IsCouplesRoom {
			return fail("%s is not a couples room required by %s", room.Name, service.Name)
		}
		return ok()
	}

	if !service.Category.IsValid() {
		return fail("service %s has unknown category %q", service.Name, service.Category)
	}
	if !room.Supports(service.Category) {
		return fail("%s cannot host %s services", room.Name, service.Category)
	}
	return ok()
}

// FilterRooms возвращает активные комнаты, способные принять услугу, в исходном порядке
func FilterRooms(rooms []*domain.Room, service *domain.Service) []*domain.Room {
	result := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room == nil || !room.IsActive {
			continue
		}
		if RoomCanHost(room, service).OK {
			result = append(result, room)
		}
	}
	return result
}
