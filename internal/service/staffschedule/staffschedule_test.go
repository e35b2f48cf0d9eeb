package staffschedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
)

func TestIsAvailable(t *testing.T) {
	ana := fx.StaffMember(fx.AnaID)

	result := IsAvailable(ana, fx.Monday)
	assert.True(t, result.OK)
	assert.Equal(t, "Monday", result.DayName)

	result = IsAvailable(ana, fx.Tuesday)
	assert.False(t, result.OK)
	assert.Equal(t, "Tuesday", result.DayName)
	if assert.Len(t, result.Reasons, 1) {
		assert.Contains(t, result.Reasons[0], "Ana is not available on Tuesday")
		assert.Contains(t, result.Reasons[0], "off Tuesday, Wednesday")
	}
}

func TestIsAvailable_SingleDayWorker(t *testing.T) {
	diego := fx.StaffMember(fx.DiegoID)

	assert.True(t, IsAvailable(diego, fx.Sunday).OK)
	for _, date := range []time.Time{fx.Monday, fx.Wednesday, fx.Saturday} {
		assert.False(t, IsAvailable(diego, date).OK, date.Weekday())
	}
}

func TestIsAvailable_MissingDayIsOff(t *testing.T) {
	staff := &domain.Staff{
		Name:     "Temp",
		Schedule: domain.WeeklySchedule{time.Friday: {Available: true}},
	}

	assert.True(t, IsAvailable(staff, fx.Friday).OK)
	assert.False(t, IsAvailable(staff, fx.Thursday).OK)
}

func TestWithinShift(t *testing.T) {
	elena := fx.StaffMember(fx.ElenaID)

	ok, _ := WithinShift(elena, fx.Monday, "12:00", 30)
	assert.True(t, ok)

	ok, _ = WithinShift(elena, fx.Monday, "17:30", 30)
	assert.True(t, ok)

	ok, reason := WithinShift(elena, fx.Monday, "11:30", 30)
	assert.False(t, ok)
	assert.Equal(t, "Elena works 12:00-18:00 on Monday", reason)

	// Без часов смены ограничений нет
	ok, _ = WithinShift(fx.StaffMember(fx.AnaID), fx.Monday, "09:00", 30)
	assert.True(t, ok)
}

func TestNoticeWarning(t *testing.T) {
	diego := fx.StaffMember(fx.DiegoID)
	now := time.Date(2025, 10, 19, 9, 0, 0, 0, time.UTC)

	msg, warn := NoticeWarning(diego, fx.Sunday, now)
	assert.True(t, warn)
	assert.Contains(t, msg, "120 minutes notice")

	_, warn = NoticeWarning(diego, fx.Sunday.AddDate(0, 0, 7), now)
	assert.False(t, warn)

	_, warn = NoticeWarning(fx.StaffMember(fx.AnaID), fx.Sunday, now)
	assert.False(t, warn)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "off Tuesday, Wednesday", Describe(fx.StaffMember(fx.AnaID)))
	assert.Equal(t, "works Sunday only; on call, needs 120 minutes notice", Describe(fx.StaffMember(fx.DiegoID)))
	assert.Equal(t, "works every day", Describe(&domain.Staff{Schedule: fx.Weekly()}))
	assert.Equal(t, "not scheduled on any day", Describe(&domain.Staff{}))
}
