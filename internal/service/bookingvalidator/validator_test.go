package bookingvalidator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
)

func input(serviceID, staffID, roomID int64, date time.Time, start string, reservations ...*domain.Reservation) Input {
	return Input{
		Request: domain.BookingRequest{
			Service:   fx.Service(serviceID),
			Staff:     fx.StaffMember(staffID),
			Room:      fx.Room(roomID),
			Date:      date,
			StartTime: start,
		},
		Rooms:        fx.Rooms(),
		Reservations: reservations,
		Now:          fx.ReferenceTime(),
	}
}

func validate(t *testing.T, in Input) *domain.ValidationResult {
	t.Helper()
	result, err := New(fx.BusinessHours()).Validate(in)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestValidate_BasicFacialIsValid(t *testing.T) {
	result := validate(t, input(fx.BasicFacialID, fx.AnaID, fx.Room1ID, fx.Monday, "10:00"))

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Conflicts)
	require.NotNil(t, result.RecommendedRoomID)
	assert.Equal(t, fx.Room1ID, *result.RecommendedRoomID)
}

func TestValidate_BodyScrubNeedsEquippedRoom(t *testing.T) {
	result := validate(t, input(fx.SaltScrubID, fx.BrunoID, fx.Room1ID, fx.Monday, "10:00"))

	assert.False(t, result.IsValid)
	require.True(t, result.HasError(domain.IssueRoomCapability))
	assert.Contains(t, result.ErrorMessages(),
		"Room 1 has no body scrub equipment required by Dead Sea Salt Body Scrub; equipped rooms: Room 3")
}

func TestValidate_StaffOffOnWeekday(t *testing.T) {
	result := validate(t, input(fx.BasicFacialID, fx.AnaID, fx.Room1ID, fx.Tuesday, "10:00"))

	assert.False(t, result.IsValid)
	require.True(t, result.HasError(domain.IssueStaffSchedule))
	assert.Contains(t, result.ErrorMessages()[0], "Tuesday")
}

func TestValidate_RoomAndStaffConflicts(t *testing.T) {
	roomBusy := fx.Reservation(1, fx.Room2ID, fx.CarlaID, fx.Wednesday, "14:00", 45)
	staffBusy := fx.Reservation(2, fx.Room4ID, fx.BrunoID, fx.Wednesday, "14:15", 30)

	result := validate(t, input(fx.DeepTissueID, fx.BrunoID, fx.Room2ID, fx.Wednesday, "14:30",
		roomBusy, staffBusy))

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{
		"Room 2 is already booked 14:00-14:45",
		"Bruno is already booked 14:15-14:45",
	}, result.ErrorMessages())
	require.Len(t, result.Conflicts, 2)
	assert.Equal(t, int64(1), result.Conflicts[0].ID)
	assert.Equal(t, int64(2), result.Conflicts[1].ID)
}

func TestValidate_AdjacentBookingIsNotAConflict(t *testing.T) {
	before := fx.Reservation(1, fx.Room2ID, fx.CarlaID, fx.Wednesday, "13:00", 60)

	result := validate(t, input(fx.DeepTissueID, fx.BrunoID, fx.Room2ID, fx.Wednesday, "14:00", before))

	assert.True(t, result.IsValid, result.ErrorMessages())
}

func TestValidate_CancelledReservationIgnored(t *testing.T) {
	cancelled := fx.Reservation(1, fx.Room2ID, fx.BrunoID, fx.Wednesday, "14:00", 60)
	cancelled.Status = domain.StatusCancelled

	result := validate(t, input(fx.DeepTissueID, fx.BrunoID, fx.Room2ID, fx.Wednesday, "14:00", cancelled))

	assert.True(t, result.IsValid, result.ErrorMessages())
}

func TestValidate_RescheduleExcludesMovedReservation(t *testing.T) {
	moving := fx.Reservation(5, fx.Room2ID, fx.BrunoID, fx.Wednesday, "14:00", 60)

	in := input(fx.DeepTissueID, fx.BrunoID, fx.Room2ID, fx.Wednesday, "14:30", moving)
	in.Request.ExcludeReservationID = ptr.Ptr(int64(5))

	result := validate(t, in)
	assert.True(t, result.IsValid, result.ErrorMessages())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	// Массаж у мастера по лицу, во вторник, в комнате для лица, после закрытия
	result := validate(t, input(fx.DeepTissueID, fx.AnaID, fx.Room1ID, fx.Tuesday, "19:30"))

	assert.False(t, result.IsValid)
	assert.True(t, result.HasError(domain.IssueBusinessHours))
	assert.True(t, result.HasError(domain.IssueStaffCapability))
	assert.True(t, result.HasError(domain.IssueStaffSchedule))
	assert.True(t, result.HasError(domain.IssueRoomCapability))

	// Порядок проверок сохраняется
	codes := make([]domain.IssueCode, len(result.Errors))
	for i, issue := range result.Errors {
		codes[i] = issue.Code
	}
	assert.Equal(t, []domain.IssueCode{
		domain.IssueBusinessHours,
		domain.IssueStaffCapability,
		domain.IssueStaffSchedule,
		domain.IssueRoomCapability,
	}, codes)
}

func TestValidate_MalformedInputFailsClosed(t *testing.T) {
	result := validate(t, input(fx.BasicFacialID, fx.AnaID, fx.Room1ID, fx.Monday, "10am"))

	assert.False(t, result.IsValid)
	assert.Equal(t, "invalid start time \"10am\", expected HH:MM", result.Errors[0].Message)

	in := input(fx.BasicFacialID, fx.AnaID, fx.Room1ID, fx.Monday, "10:00")
	in.Request.Service.Category = "aromatherapy"
	result = validate(t, in)

	assert.False(t, result.IsValid)
	assert.True(t, result.HasError(domain.IssueInvalidInput))
	assert.Contains(t, result.ErrorMessages()[0], "unknown category")
}

func TestValidate_SuboptimalRoomIsWarning(t *testing.T) {
	// Ана обычно работает в Room 1, Room 2 тоже подходит
	result := validate(t, input(fx.BasicFacialID, fx.AnaID, fx.Room2ID, fx.Monday, "10:00"))

	assert.True(t, result.IsValid)
	require.True(t, result.HasWarning(domain.IssueSuboptimalRoom))
	assert.Equal(t, []string{"Room 1 is recommended (staff member's default room) instead of Room 2"},
		result.WarningMessages())
}

func TestValidate_OnCallSameDayWarning(t *testing.T) {
	in := input(fx.DeepTissueID, fx.DiegoID, fx.Room4ID, fx.Sunday, "15:00")
	in.Now = time.Date(2025, 10, 19, 9, 0, 0, 0, time.UTC)

	result := validate(t, in)

	assert.True(t, result.IsValid, result.ErrorMessages())
	assert.True(t, result.HasWarning(domain.IssueMinNotice))
}

func TestValidate_OutsideStaffShift(t *testing.T) {
	result := validate(t, input(fx.BrazilianWaxID, fx.ElenaID, fx.Room1ID, fx.Monday, "10:00"))

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Elena works 12:00-18:00 on Monday"}, result.ErrorMessages())
}

func TestValidate_InactiveRoom(t *testing.T) {
	in := input(fx.BasicFacialID, fx.AnaID, fx.Room1ID, fx.Monday, "10:00")
	in.Request.Room.IsActive = false

	result := validate(t, in)

	assert.False(t, result.IsValid)
	assert.True(t, result.HasError(domain.IssueInactiveResource))
	assert.False(t, result.HasWarning(domain.IssueSuboptimalRoom))
}

func TestValidate_Idempotent(t *testing.T) {
	busy := fx.Reservation(1, fx.Room2ID, fx.CarlaID, fx.Wednesday, "14:00", 45)
	in := input(fx.DeepTissueID, fx.BrunoID, fx.Room2ID, fx.Wednesday, "14:30", busy)
	v := New(fx.BusinessHours())

	first, err := v.Validate(in)
	require.NoError(t, err)
	second, err := v.Validate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidate_MissingReference(t *testing.T) {
	in := input(fx.BasicFacialID, fx.AnaID, fx.Room1ID, fx.Monday, "10:00")
	in.Request.Staff = nil

	result, err := New(fx.BusinessHours()).Validate(in)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMissingReference)
}

func TestValidate_ResolvesRoomWhenNotChosen(t *testing.T) {
	in := input(fx.DeepTissueID, fx.DiegoID, 0, fx.Sunday, "10:00")

	result := validate(t, in)

	assert.True(t, result.IsValid, result.ErrorMessages())
	assert.Empty(t, result.Warnings)
	require.NotNil(t, result.RecommendedRoomID)
	assert.Equal(t, fx.Room4ID, *result.RecommendedRoomID)
}

func TestValidate_ResolvedRoomHonoursExclusions(t *testing.T) {
	in := input(fx.CouplesMassageID, fx.CarlaID, 0, fx.Saturday, "11:00")
	in.ExcludeRoomIDs = []int64{fx.Room3ID}

	result := validate(t, in)

	assert.True(t, result.IsValid, result.ErrorMessages())
	require.NotNil(t, result.RecommendedRoomID)
	assert.Equal(t, fx.Room4ID, *result.RecommendedRoomID)
}

func TestValidate_NoRoomAvailable(t *testing.T) {
	busy := fx.Reservation(1, fx.Room3ID, fx.CarlaID, fx.Monday, "10:30", 60)
	in := input(fx.CouplesScrubID, fx.BrunoID, 0, fx.Monday, "11:00", busy)

	result := validate(t, in)

	assert.False(t, result.IsValid)
	assert.Nil(t, result.RecommendedRoomID)
	assert.True(t, result.HasError(domain.IssueRoomConflict))
	assert.Equal(t, []string{"all couples-capable, scrub-equipped rooms are booked at 11:00"}, result.ErrorMessages())

	in.Rooms = []*domain.Room{fx.Room(fx.Room1ID), fx.Room(fx.Room2ID)}
	result = validate(t, in)

	assert.True(t, result.HasError(domain.IssueRoomCapability))
}
