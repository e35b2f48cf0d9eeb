package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

// Category семейство услуг, по которому сопоставляются мастера и комнаты
type Category string

const (
	CategoryFacial        Category = "facial"
	CategoryMassage       Category = "massage"
	CategoryBodyTreatment Category = "body_treatment"
	CategoryBodyScrub     Category = "body_scrub"
	CategoryWaxing        Category = "waxing"
	CategoryPackage       Category = "package"
	CategoryMembership    Category = "membership"
)

// AllCategories список известных категорий
var AllCategories = []Category{
	CategoryFacial,
	CategoryMassage,
	CategoryBodyTreatment,
	CategoryBodyScrub,
	CategoryWaxing,
	CategoryPackage,
	CategoryMembership,
}

// IsValid проверяет, что категория известна
func (c Category) IsValid() bool {
	return slices.Contains(AllCategories, c)
}

// ParseCategory разбирает категорию, неизвестные значения отклоняются
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown service category %q", s)
	}
	return c, nil
}

// Service справочная услуга, движком не изменяется
type Service struct {
	ID                    int64
	Name                  string
	DurationMinutes       int
	Price                 float64
	Category              Category
	RequiresCouplesRoom   bool
	RequiresBodyScrubRoom bool
	IsPackage             bool
}

// NeedsBodyScrubRoom услуга проводится только в комнате с оборудованием для скраба
func (s *Service) NeedsBodyScrubRoom() bool {
	return s.RequiresBodyScrubRoom || s.Category == CategoryBodyScrub
}

// NeedsCouplesRoom услуге нужна парная комната
func (s *Service) NeedsCouplesRoom() bool {
	return s.RequiresCouplesRoom || s.IsPackage
}

// DaySchedule смена мастера на один день недели
// Пустые StartTime/EndTime означают весь рабочий день салона
type DaySchedule struct {
	Available bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// HasShiftHours день ограничивает рабочие часы
func (d DaySchedule) HasShiftHours() bool {
	return !d.StartTime.IsZero() && !d.EndTime.IsZero()
}

// WeeklySchedule расписание по дням недели; отсутствующий день = выходной
type WeeklySchedule map[time.Weekday]DaySchedule

// Staff мастер салона
// Индивидуальные исключения (работает только в воскресенье, выходные во вторник и среду,
// только одна категория, минимальный срок записи) задаются данными, а не кодом
type Staff struct {
	ID                 int64
	Name               string
	CanPerformServices []Category
	DefaultRoomID      *int64
	Schedule           WeeklySchedule
	MinNoticeMinutes   int // 0 = без ограничения (мастер не на вызове)
	IsActive           bool
}

// CanPerform мастер обучен категории
func (s *Staff) CanPerform(c Category) bool {
	return slices.Contains(s.CanPerformServices, c)
}

// DayFor возвращает смену на день недели указанной даты
func (s *Staff) DayFor(date time.Time) (DaySchedule, bool) {
	day, ok := s.Schedule[date.Weekday()]
	return day, ok
}

// IsOnCall мастеру нужно предупреждение заранее
func (s *Staff) IsOnCall() bool {
	return s.MinNoticeMinutes > 0
}

// Room процедурная комната
type Room struct {
	ID                    int64
	Name                  string
	Capabilities          []Category
	HasBodyScrubEquipment bool
	IsCouplesRoom         bool
	IsActive              bool
}

// Supports категория входит в возможности комнаты
func (r *Room) Supports(c Category) bool {
	return slices.Contains(r.Capabilities, c)
}
