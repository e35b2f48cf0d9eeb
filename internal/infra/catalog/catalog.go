package catalog

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/pkg/types"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Catalog справочник услуг, комнат и мастеров салона
// Загружается один раз при старте, дальше только чтение; методы возвращают копии
type Catalog struct {
	services map[int64]*domain.Service
	staff    map[int64]*domain.Staff
	rooms    map[int64]*domain.Room
}

// Load читает каталог из TOML файла
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return Parse(string(data))
}

// Parse разбирает и проверяет каталог
func Parse(data string) (*Catalog, error) {
	var file fileCatalog
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		services: make(map[int64]*domain.Service, len(file.Services)),
		staff:    make(map[int64]*domain.Staff, len(file.Staff)),
		rooms:    make(map[int64]*domain.Room, len(file.Rooms)),
	}

	for _, fs := range file.Services {
		service, err := toService(fs)
		if err != nil {
			return nil, err
		}
		if _, exists := c.services[service.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate service id=%d", ErrInvalidCatalog, service.ID)
		}
		c.services[service.ID] = service
	}

	for _, fr := range file.Rooms {
		room, err := toRoom(fr)
		if err != nil {
			return nil, err
		}
		if _, exists := c.rooms[room.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate room id=%d", ErrInvalidCatalog, room.ID)
		}
		c.rooms[room.ID] = room
	}

	for _, fst := range file.Staff {
		staff, err := toStaff(fst)
		if err != nil {
			return nil, err
		}
		if _, exists := c.staff[staff.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate staff id=%d", ErrInvalidCatalog, staff.ID)
		}
		if staff.DefaultRoomID != nil {
			if _, ok := c.rooms[*staff.DefaultRoomID]; !ok {
				return nil, fmt.Errorf("%w: staff %s default room id=%d does not exist",
					ErrInvalidCatalog, staff.Name, *staff.DefaultRoomID)
			}
		}
		c.staff[staff.ID] = staff
	}

	return c, nil
}

// GetService возвращает услугу по ID
func (c *Catalog) GetService(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := c.services[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
	}
	copied := *s
	return &copied, nil
}

// GetStaff возвращает мастера по ID
func (c *Catalog) GetStaff(_ context.Context, id int64) (*domain.Staff, error) {
	s, ok := c.staff[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrStaffNotFound, id)
	}
	return copyStaff(s), nil
}

// GetRoom возвращает комнату по ID
func (c *Catalog) GetRoom(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := c.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrRoomNotFound, id)
	}
	return copyRoom(r), nil
}

// ListServices возвращает все услуги, отсортированные по ID
func (c *Catalog) ListServices(_ context.Context) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0, len(c.services))
	for _, s := range c.services {
		copied := *s
		services = append(services, &copied)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

// ListStaff возвращает всех мастеров, отсортированных по ID
func (c *Catalog) ListStaff(_ context.Context) ([]*domain.Staff, error) {
	staff := make([]*domain.Staff, 0, len(c.staff))
	for _, s := range c.staff {
		staff = append(staff, copyStaff(s))
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })
	return staff, nil
}

// ListRooms возвращает все комнаты (включая неактивные), отсортированные по ID
func (c *Catalog) ListRooms(_ context.Context) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		rooms = append(rooms, copyRoom(r))
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func toService(fs fileService) (*domain.Service, error) {
	category, err := domain.ParseCategory(fs.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: service id=%d: %v", ErrInvalidCatalog, fs.ID, err)
	}
	if fs.DurationMinutes < domain.MinServiceDurationMinutes || fs.DurationMinutes > domain.MaxServiceDurationMinutes {
		return nil, fmt.Errorf("%w: service id=%d: duration %d minutes out of range",
			ErrInvalidCatalog, fs.ID, fs.DurationMinutes)
	}
	if fs.Price < 0 {
		return nil, fmt.Errorf("%w: service id=%d: negative price", ErrInvalidCatalog, fs.ID)
	}

	return &domain.Service{
		ID:                    fs.ID,
		Name:                  fs.Name,
		DurationMinutes:       fs.DurationMinutes,
		Price:                 fs.Price,
		Category:              category,
		RequiresCouplesRoom:   fs.RequiresCouplesRoom,
		RequiresBodyScrubRoom: fs.RequiresBodyScrubRoom,
		IsPackage:             fs.IsPackage,
	}, nil
}

func toRoom(fr fileRoom) (*domain.Room, error) {
	capabilities, err := parseCategories(fr.Capabilities)
	if err != nil {
		return nil, fmt.Errorf("%w: room id=%d: %v", ErrInvalidCatalog, fr.ID, err)
	}

	return &domain.Room{
		ID:                    fr.ID,
		Name:                  fr.Name,
		Capabilities:          capabilities,
		HasBodyScrubEquipment: fr.HasBodyScrubEquipment,
		IsCouplesRoom:         fr.IsCouplesRoom,
		IsActive:              fr.IsActive == nil || *fr.IsActive,
	}, nil
}

func toStaff(fst fileStaff) (*domain.Staff, error) {
	categories, err := parseCategories(fst.CanPerform)
	if err != nil {
		return nil, fmt.Errorf("%w: staff id=%d: %v", ErrInvalidCatalog, fst.ID, err)
	}
	if fst.MinNoticeMinutes < 0 || fst.MinNoticeMinutes > domain.MaxNoticeMinutes {
		return nil, fmt.Errorf("%w: staff id=%d: min_notice_minutes out of range", ErrInvalidCatalog, fst.ID)
	}

	schedule := make(domain.WeeklySchedule, len(fst.Schedule))
	for name, fd := range fst.Schedule {
		day, ok := weekdays[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: staff id=%d: unknown weekday %q", ErrInvalidCatalog, fst.ID, name)
		}
		ds, err := toDay(fd)
		if err != nil {
			return nil, fmt.Errorf("%w: staff id=%d %s: %v", ErrInvalidCatalog, fst.ID, name, err)
		}
		schedule[day] = ds
	}

	return &domain.Staff{
		ID:                 fst.ID,
		Name:               fst.Name,
		CanPerformServices: categories,
		DefaultRoomID:      fst.DefaultRoomID,
		Schedule:           schedule,
		MinNoticeMinutes:   fst.MinNoticeMinutes,
		IsActive:           fst.IsActive == nil || *fst.IsActive,
	}, nil
}

func toDay(fd fileDay) (domain.DaySchedule, error) {
	ds := domain.DaySchedule{Available: fd.Available}
	if fd.Start == "" && fd.End == "" {
		return ds, nil
	}

	start, err := types.NewTimeStringFromString(fd.Start)
	if err != nil {
		return ds, fmt.Errorf("shift start: %v", err)
	}
	end, err := types.NewTimeStringFromString(fd.End)
	if err != nil {
		return ds, fmt.Errorf("shift end: %v", err)
	}
	if !start.IsBefore(end) {
		return ds, fmt.Errorf("shift start %s must be before end %s", start, end)
	}

	ds.StartTime = start
	ds.EndTime = end
	return ds, nil
}

func parseCategories(values []string) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(values))
	for _, v := range values {
		c, err := domain.ParseCategory(v)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func copyRoom(r *domain.Room) *domain.Room {
	copied := *r
	copied.Capabilities = append([]domain.Category(nil), r.Capabilities...)
	return &copied
}

func copyStaff(s *domain.Staff) *domain.Staff {
	copied := *s
	copied.CanPerformServices = append([]domain.Category(nil), s.CanPerformServices...)
	if s.DefaultRoomID != nil {
		id := *s.DefaultRoomID
		copied.DefaultRoomID = &id
	}
	copied.Schedule = make(domain.WeeklySchedule, len(s.Schedule))
	for day, ds := range s.Schedule {
		copied.Schedule[day] = ds
	}
	return &copied
}
