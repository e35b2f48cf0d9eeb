package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/infra/catalog"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookings/models"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	err error
}

func (c *fakeCatalog) GetService(_ context.Context, id int64) (*domain.Service, error) {
	if s := fx.Service(id); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrServiceNotFound, id)
}

func (c *fakeCatalog) GetStaff(_ context.Context, id int64) (*domain.Staff, error) {
	if s := fx.StaffMember(id); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrStaffNotFound, id)
}

func (c *fakeCatalog) GetRoom(_ context.Context, id int64) (*domain.Room, error) {
	if c.err != nil {
		return nil, c.err
	}
	if r := fx.Room(id); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("%w: id=%d", catalog.ErrRoomNotFound, id)
}

func (c *fakeCatalog) ListRooms(_ context.Context) ([]*domain.Room, error) {
	if c.err != nil {
		return nil, c.err
	}
	return fx.Rooms(), nil
}

type fakeReservations struct {
	reservations []*domain.Reservation
}

func (f *fakeReservations) FetchReservations(_ context.Context, rt domain.ResourceType, id int64, _ time.Time) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.ResourceID(rt) == id {
			result = append(result, r)
		}
	}
	return result, nil
}

func TestLoadParticipant(t *testing.T) {
	svc := NewService(&fakeCatalog{}, &fakeReservations{}, nopLogger{})

	p, err := svc.LoadParticipant(context.Background(), models.ParticipantIDs{
		ServiceID: fx.BasicFacialID,
		StaffID:   fx.AnaID,
		RoomID:    ptr.Ptr(fx.Room1ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "Basic Facial", p.Service.Name)
	assert.Equal(t, "Ana", p.Staff.Name)
	assert.Equal(t, "Room 1", p.Room.Name)

	p, err = svc.LoadParticipant(context.Background(), models.ParticipantIDs{ServiceID: fx.BasicFacialID, StaffID: fx.AnaID})
	require.NoError(t, err)
	assert.Nil(t, p.Room)
}

func TestLoadParticipant_NotFound(t *testing.T) {
	svc := NewService(&fakeCatalog{}, &fakeReservations{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.LoadParticipant(ctx, models.ParticipantIDs{ServiceID: 999, StaffID: fx.AnaID})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = svc.LoadParticipant(ctx, models.ParticipantIDs{ServiceID: fx.BasicFacialID, StaffID: 999})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = svc.LoadParticipant(ctx, models.ParticipantIDs{ServiceID: fx.BasicFacialID, StaffID: fx.AnaID, RoomID: ptr.Ptr(int64(999))})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestLoadParticipant_InternalError(t *testing.T) {
	svc := NewService(&fakeCatalog{err: errors.New("catalog unavailable")}, &fakeReservations{}, nopLogger{})

	_, err := svc.LoadParticipant(context.Background(), models.ParticipantIDs{
		ServiceID: fx.BasicFacialID, StaffID: fx.AnaID, RoomID: ptr.Ptr(fx.Room1ID),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestLoadSnapshot(t *testing.T) {
	store := &fakeReservations{reservations: []*domain.Reservation{
		fx.Reservation(1, fx.Room2ID, fx.BrunoID, fx.Monday, "11:00", 60),
		fx.Reservation(2, fx.Room1ID, fx.AnaID, fx.Monday, "09:00", 30),
	}}
	svc := NewService(&fakeCatalog{}, store, nopLogger{})

	snap, err := svc.LoadSnapshot(context.Background(), fx.Monday, fx.BrunoID)

	require.NoError(t, err)
	assert.Len(t, snap.Rooms, 4)
	require.Len(t, snap.Reservations, 2)
	assert.Equal(t, int64(2), snap.Reservations[0].ID)
	assert.Equal(t, "Room 3", snap.RoomByID(fx.Room3ID).Name)
	assert.Nil(t, snap.RoomByID(42))
}
