// Package fakes in-memory реализации зависимостей use case для тестов
package fakes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/infra/catalog"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
)

// Catalog каталог эталонного салона
type Catalog struct {
	Rooms []*domain.Room
	Err   error
}

// NewCatalog создает каталог с комнатами, услугами и мастерами из testfixtures
func NewCatalog() *Catalog {
	return &Catalog{Rooms: fx.Rooms()}
}

func (c *Catalog) GetService(_ context.Context, id int64) (*domain.Service, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if s := fx.Service(id); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrServiceNotFound, id)
}

func (c *Catalog) GetStaff(_ context.Context, id int64) (*domain.Staff, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if s := fx.StaffMember(id); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrStaffNotFound, id)
}

func (c *Catalog) GetRoom(_ context.Context, id int64) (*domain.Room, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	for _, r := range c.Rooms {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrRoomNotFound, id)
}

func (c *Catalog) ListRooms(_ context.Context) ([]*domain.Room, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	rooms := make([]*domain.Room, 0, len(c.Rooms))
	for _, r := range c.Rooms {
		copied := *r
		rooms = append(rooms, &copied)
	}
	return rooms, nil
}

// ReservationStore хранилище бронирований в памяти (путь чтения)
type ReservationStore struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	FetchErr     error
	FetchCalls   int
}

// NewReservationStore создает хранилище с начальными бронированиями
func NewReservationStore(reservations ...*domain.Reservation) *ReservationStore {
	return &ReservationStore{reservations: reservations}
}

// Add добавляет бронирования (например, "конкурент" между попытками)
func (s *ReservationStore) Add(reservations ...*domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, reservations...)
}

func (s *ReservationStore) FetchReservations(
	_ context.Context,
	resourceType domain.ResourceType,
	resourceID int64,
	date time.Time,
) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FetchCalls++
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}

	result := make([]*domain.Reservation, 0)
	for _, r := range s.reservations {
		if r.ResourceID(resourceType) == resourceID && r.IsOnDate(date) && !r.IsCancelled() {
			result = append(result, r)
		}
	}
	return result, nil
}

// NewLoader настоящий сервис загрузки поверх фейкового каталога и хранилища
func NewLoader(store *ReservationStore) *bookings.Service {
	return bookings.NewService(NewCatalog(), store, &Logger{})
}

// Logger запоминает строки лога
type Logger struct {
	mu    sync.Mutex
	Lines []string
}

func (l *Logger) record(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, level+" "+fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{})  { l.record("INFO", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.record("WARN", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.record("ERROR", format, v...) }

// Metrics запоминает наблюдения
type Metrics struct {
	mu              sync.Mutex
	Validations     []bool
	CouplesAttempts []string
	CommitConflicts []string
}

func (m *Metrics) ObserveValidation(valid bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Validations = append(m.Validations, valid)
}

func (m *Metrics) ObserveCouplesAttempt(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CouplesAttempts = append(m.CouplesAttempts, outcome)
}

func (m *Metrics) ObserveCommitConflict(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CommitConflicts = append(m.CommitConflicts, kind)
}

// FixedTime провайдер фиксированного времени
type FixedTime struct {
	T time.Time
}

func (f FixedTime) Now() time.Time {
	return f.T
}
