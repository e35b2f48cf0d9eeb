package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	"github.com/m04kA/SMC-SpaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/internal/testfixtures/fakes"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
)

type fakeRepo struct {
	store  *fakes.ReservationStore
	err    error
	calls  []domain.SingleCommit
	nextID int64
}

func (r *fakeRepo) CommitSingleBooking(_ context.Context, cmd domain.SingleCommit) (*domain.Reservation, error) {
	r.calls = append(r.calls, cmd)
	if r.err != nil {
		return nil, r.err
	}

	r.nextID++
	created := &domain.Reservation{
		ID:              r.nextID,
		RoomID:          cmd.RoomID,
		StaffID:         cmd.StaffID,
		ServiceID:       cmd.ServiceID,
		CustomerID:      cmd.CustomerID,
		Date:            cmd.Date,
		StartTime:       cmd.StartTime,
		DurationMinutes: cmd.DurationMinutes,
		Status:          domain.StatusConfirmed,
		CreatedAt:       fx.ReferenceTime(),
		UpdatedAt:       fx.ReferenceTime(),
	}
	r.store.Add(created)
	return created, nil
}

func newUseCase(store *fakes.ReservationStore) (*UseCase, *fakeRepo, *fakes.Metrics) {
	repo := &fakeRepo{store: store}
	m := &fakes.Metrics{}
	uc := NewUseCase(repo, fakes.NewLoader(store), bookingvalidator.New(fx.BusinessHours()), m, &fakes.Logger{})
	uc.timeProvider = fakes.FixedTime{T: fx.ReferenceTime()}
	return uc, repo, m
}

func TestExecute_CreatesBooking(t *testing.T) {
	uc, repo, m := newUseCase(fakes.NewReservationStore())

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		ServiceID:  fx.BasicFacialID,
		StaffID:    fx.AnaID,
		RoomID:     ptr.Ptr(fx.Room1ID),
		Date:       fx.Monday,
		StartTime:  "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, fx.Room1ID, resp.RoomID)
	assert.Equal(t, "Basic Facial", resp.ServiceName)
	assert.Equal(t, 65.0, resp.ServicePrice)
	assert.Equal(t, "Ana", resp.StaffName)
	assert.Equal(t, "Room 1", resp.RoomName)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Empty(t, resp.Warnings)

	require.Len(t, repo.calls, 1)
	assert.Equal(t, domain.SingleCommit{
		ServiceID:       fx.BasicFacialID,
		StaffID:         fx.AnaID,
		RoomID:          fx.Room1ID,
		CustomerID:      7,
		Date:            fx.Monday,
		StartTime:       "10:00",
		DurationMinutes: 30,
	}, repo.calls[0])
	assert.Equal(t, []bool{true}, m.Validations)
}

func TestExecute_AssignsRoomWhenNotChosen(t *testing.T) {
	uc, repo, _ := newUseCase(fakes.NewReservationStore())

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		ServiceID:  fx.SaltScrubID,
		StaffID:    fx.BrunoID,
		Date:       fx.Monday,
		StartTime:  "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, fx.Room3ID, resp.RoomID)
	assert.Equal(t, "Room 3", resp.RoomName)
	require.Len(t, repo.calls, 1)
	assert.Equal(t, fx.Room3ID, repo.calls[0].RoomID)
}

func TestExecute_ReturnsWarnings(t *testing.T) {
	uc, _, _ := newUseCase(fakes.NewReservationStore())

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		ServiceID:  fx.BasicFacialID,
		StaffID:    fx.AnaID,
		RoomID:     ptr.Ptr(fx.Room2ID),
		Date:       fx.Monday,
		StartTime:  "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, fx.Room2ID, resp.RoomID)
	assert.Equal(t, []string{"Room 1 is recommended (staff member's default room) instead of Room 2"}, resp.Warnings)
}

func TestExecute_SecondBookingSeesFirst(t *testing.T) {
	uc, repo, _ := newUseCase(fakes.NewReservationStore())
	req := &Request{
		CustomerID: 7,
		ServiceID:  fx.DeepTissueID,
		StaffID:    fx.BrunoID,
		RoomID:     ptr.Ptr(fx.Room2ID),
		Date:       fx.Wednesday,
		StartTime:  "14:00",
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Result.HasError(domain.IssueRoomConflict))
	assert.True(t, verr.Result.HasError(domain.IssueStaffConflict))
	assert.Len(t, repo.calls, 1)
}

func TestExecute_RejectedBookingIsNotCommitted(t *testing.T) {
	uc, repo, m := newUseCase(fakes.NewReservationStore())

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		ServiceID:  fx.BasicFacialID,
		StaffID:    fx.AnaID,
		RoomID:     ptr.Ptr(fx.Room1ID),
		Date:       fx.Tuesday,
		StartTime:  "10:00",
	})

	require.ErrorIs(t, err, ErrValidationFailed)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Result.HasError(domain.IssueStaffSchedule))
	assert.Contains(t, err.Error(), "Ana is not available on Tuesday")
	assert.Empty(t, repo.calls)
	assert.Equal(t, []bool{false}, m.Validations)
}

func TestExecute_LostRaceAtCommit(t *testing.T) {
	uc, repo, m := newUseCase(fakes.NewReservationStore())
	repo.err = fmt.Errorf("%w: room id=1 is already booked 10:00-10:30", reservation.ErrCommitConflict)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		ServiceID:  fx.BasicFacialID,
		StaffID:    fx.AnaID,
		RoomID:     ptr.Ptr(fx.Room1ID),
		Date:       fx.Monday,
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, repo.calls, 1)
	assert.Equal(t, []string{"single"}, m.CommitConflicts)
}

func TestExecute_CommitFailure(t *testing.T) {
	uc, repo, m := newUseCase(fakes.NewReservationStore())
	repo.err = errors.New("connection reset")

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		ServiceID:  fx.BasicFacialID,
		StaffID:    fx.AnaID,
		RoomID:     ptr.Ptr(fx.Room1ID),
		Date:       fx.Monday,
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, m.CommitConflicts)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"no customer", func(r *Request) { r.CustomerID = 0 }, ErrInvalidInput},
		{"bad service id", func(r *Request) { r.ServiceID = -1 }, ErrInvalidInput},
		{"bad room id", func(r *Request) { r.RoomID = ptr.Ptr(int64(0)) }, ErrInvalidInput},
		{"no date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"unknown service", func(r *Request) { r.ServiceID = 999 }, ErrServiceNotFound},
		{"unknown staff", func(r *Request) { r.StaffID = 999 }, ErrStaffNotFound},
		{"unknown room", func(r *Request) { r.RoomID = ptr.Ptr(int64(99)) }, ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newUseCase(fakes.NewReservationStore())
			req := &Request{
				CustomerID: 7,
				ServiceID:  fx.BasicFacialID,
				StaffID:    fx.AnaID,
				Date:       fx.Monday,
				StartTime:  "10:00",
			}
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.calls)
		})
	}
}

func TestExecute_SnapshotFailure(t *testing.T) {
	store := fakes.NewReservationStore()
	store.FetchErr = errors.New("db down")
	uc, repo, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		ServiceID:  fx.BasicFacialID,
		StaffID:    fx.AnaID,
		Date:       fx.Monday,
		StartTime:  "10:00",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.calls)
}
