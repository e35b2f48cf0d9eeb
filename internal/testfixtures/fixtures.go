package testfixtures

import (
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// Комнаты стандартной конфигурации салона
const (
	Room1ID int64 = 1 // лицо и воск
	Room2ID int64 = 2 // универсальная
	Room3ID int64 = 3 // парная, с оборудованием для скраба
	Room4ID int64 = 4 // парная, без оборудования
)

// Услуги
const (
	BasicFacialID       int64 = 100
	DeepTissueID        int64 = 101
	CouplesMassageID    int64 = 102
	SaltScrubID         int64 = 103
	CouplesScrubID      int64 = 104
	SpaPackageID        int64 = 105
	BrazilianWaxID      int64 = 106
	HotStoneTreatmentID int64 = 107
)

// Мастера
const (
	AnaID   int64 = 10 // только лицо, выходные вторник и среда
	BrunoID int64 = 11 // массаж и тело, выходной воскресенье
	CarlaID int64 = 12 // массаж, тело, лицо, выходные понедельник и четверг
	DiegoID int64 = 13 // работает только в воскресенье, на вызове
	ElenaID int64 = 14 // только воск, смена 12:00-18:00
)

// Даты одной недели (октябрь 2025)
var (
	Monday    = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	Tuesday   = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	Wednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	Thursday  = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	Friday    = time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
	Saturday  = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	Sunday    = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

// ReferenceTime момент "сейчас" для тестов: воскресенье перед тестовой неделей
func ReferenceTime() time.Time {
	return time.Date(2025, 10, 12, 8, 0, 0, 0, time.UTC)
}

// BusinessHours рабочие часы салона в тестах
func BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{Open: "09:00", Close: "20:00"}
}

// Rooms возвращает новые экземпляры комнат
func Rooms() []*domain.Room {
	return []*domain.Room{
		{
			ID:           Room1ID,
			Name:         "Room 1",
			Capabilities: []domain.Category{domain.CategoryFacial, domain.CategoryWaxing},
			IsActive:     true,
		},
		{
			ID:   Room2ID,
			Name: "Room 2",
			Capabilities: []domain.Category{
				domain.CategoryFacial, domain.CategoryMassage, domain.CategoryBodyTreatment, domain.CategoryWaxing,
			},
			IsActive: true,
		},
		{
			ID:   Room3ID,
			Name: "Room 3",
			Capabilities: []domain.Category{
				domain.CategoryMassage, domain.CategoryBodyTreatment, domain.CategoryBodyScrub,
			},
			HasBodyScrubEquipment: true,
			IsCouplesRoom:         true,
			IsActive:              true,
		},
		{
			ID:            Room4ID,
			Name:          "Room 4",
			Capabilities:  []domain.Category{domain.CategoryMassage, domain.CategoryBodyTreatment},
			IsCouplesRoom: true,
			IsActive:      true,
		},
	}
}

// Services возвращает новые экземпляры услуг
func Services() []*domain.Service {
	return []*domain.Service{
		{ID: BasicFacialID, Name: "Basic Facial", DurationMinutes: 30, Price: 65, Category: domain.CategoryFacial},
		{ID: DeepTissueID, Name: "Deep Tissue Massage", DurationMinutes: 60, Price: 110, Category: domain.CategoryMassage},
		{
			ID: CouplesMassageID, Name: "Couples Massage", DurationMinutes: 60, Price: 200,
			Category: domain.CategoryMassage, RequiresCouplesRoom: true,
		},
		{
			ID: SaltScrubID, Name: "Dead Sea Salt Body Scrub", DurationMinutes: 45, Price: 95,
			Category: domain.CategoryBodyScrub, RequiresBodyScrubRoom: true,
		},
		{
			ID: CouplesScrubID, Name: "Couples Body Scrub", DurationMinutes: 45, Price: 180,
			Category: domain.CategoryBodyScrub, RequiresBodyScrubRoom: true, RequiresCouplesRoom: true,
		},
		{
			ID: SpaPackageID, Name: "Relaxation Package", DurationMinutes: 120, Price: 250,
			Category: domain.CategoryPackage, IsPackage: true,
		},
		{ID: BrazilianWaxID, Name: "Brazilian Wax", DurationMinutes: 30, Price: 55, Category: domain.CategoryWaxing},
		{
			ID: HotStoneTreatmentID, Name: "Hot Stone Body Treatment", DurationMinutes: 45, Price: 90,
			Category: domain.CategoryBodyTreatment,
		},
	}
}

// Staff возвращает новые экземпляры мастеров
func Staff() []*domain.Staff {
	return []*domain.Staff{
		{
			ID:                 AnaID,
			Name:               "Ana",
			CanPerformServices: []domain.Category{domain.CategoryFacial},
			DefaultRoomID:      ptr.Ptr(Room1ID),
			Schedule:           Weekly(time.Tuesday, time.Wednesday),
			IsActive:           true,
		},
		{
			ID:   BrunoID,
			Name: "Bruno",
			CanPerformServices: []domain.Category{
				domain.CategoryMassage, domain.CategoryBodyTreatment, domain.CategoryBodyScrub, domain.CategoryPackage,
			},
			DefaultRoomID: ptr.Ptr(Room2ID),
			Schedule:      Weekly(time.Sunday),
			IsActive:      true,
		},
		{
			ID:   CarlaID,
			Name: "Carla",
			CanPerformServices: []domain.Category{
				domain.CategoryMassage, domain.CategoryBodyTreatment, domain.CategoryBodyScrub,
				domain.CategoryFacial, domain.CategoryPackage,
			},
			DefaultRoomID: ptr.Ptr(Room3ID),
			Schedule:      Weekly(time.Monday, time.Thursday),
			IsActive:      true,
		},
		{
			ID:                 DiegoID,
			Name:               "Diego",
			CanPerformServices: []domain.Category{domain.CategoryMassage},
			Schedule:           OnlyOn(time.Sunday),
			MinNoticeMinutes:   120,
			IsActive:           true,
		},
		{
			ID:                 ElenaID,
			Name:               "Elena",
			CanPerformServices: []domain.Category{domain.CategoryWaxing},
			DefaultRoomID:      ptr.Ptr(Room1ID),
			Schedule:           WeeklyShift("12:00", "18:00", time.Sunday),
			IsActive:           true,
		},
	}
}

// Weekly расписание на всю неделю, кроме указанных выходных
func Weekly(daysOff ...time.Weekday) domain.WeeklySchedule {
	return WeeklyShift("", "", daysOff...)
}

// WeeklyShift расписание со сменой start-end, кроме указанных выходных
func WeeklyShift(start, end types.TimeString, daysOff ...time.Weekday) domain.WeeklySchedule {
	schedule := make(domain.WeeklySchedule, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		schedule[day] = domain.DaySchedule{Available: true, StartTime: start, EndTime: end}
	}
	for _, day := range daysOff {
		schedule[day] = domain.DaySchedule{Available: false}
	}
	return schedule
}

// OnlyOn расписание с единственным рабочим днем
func OnlyOn(day time.Weekday) domain.WeeklySchedule {
	schedule := make(domain.WeeklySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		schedule[d] = domain.DaySchedule{Available: d == day}
	}
	return schedule
}

// Room возвращает комнату по ID или nil
func Room(id int64) *domain.Room {
	for _, r := range Rooms() {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Service возвращает услугу по ID или nil
func Service(id int64) *domain.Service {
	for _, s := range Services() {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// StaffMember возвращает мастера по ID или nil
func StaffMember(id int64) *domain.Staff {
	for _, s := range Staff() {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Reservation создает подтвержденное бронирование
func Reservation(id, roomID, staffID int64, date time.Time, start types.TimeString, duration int) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		RoomID:          roomID,
		StaffID:         staffID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}
