package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
)

func TestStaffCanPerform(t *testing.T) {
	ana := fx.StaffMember(fx.AnaID)

	result := StaffCanPerform(ana, fx.Service(fx.BasicFacialID))
	assert.True(t, result.OK)
	assert.Empty(t, result.Reasons)

	result = StaffCanPerform(ana, fx.Service(fx.DeepTissueID))
	assert.False(t, result.OK)
	assert.Contains(t, result.Reasons[0], "Ana is not qualified for massage")

	unknown := &domain.Service{Name: "Mystery", Category: "aromatherapy"}
	result = StaffCanPerform(ana, unknown)
	assert.False(t, result.OK)
	assert.Contains(t, result.Reasons[0], "unknown category")
}

func TestRoomCanHost(t *testing.T) {
	tests := []struct {
		name      string
		roomID    int64
		serviceID int64
		want      bool
	}{
		{name: "facial in facial room", roomID: fx.Room1ID, serviceID: fx.BasicFacialID, want: true},
		{name: "massage in facial room", roomID: fx.Room1ID, serviceID: fx.DeepTissueID, want: false},
		{name: "scrub without equipment", roomID: fx.Room1ID, serviceID: fx.SaltScrubID, want: false},
		{name: "scrub in generic massage room", roomID: fx.Room2ID, serviceID: fx.SaltScrubID, want: false},
		{name: "scrub in equipped room", roomID: fx.Room3ID, serviceID: fx.SaltScrubID, want: true},
		{name: "couples massage in single room", roomID: fx.Room2ID, serviceID: fx.CouplesMassageID, want: false},
		{name: "couples massage in couples room", roomID: fx.Room4ID, serviceID: fx.CouplesMassageID, want: true},
		{name: "package needs couples room", roomID: fx.Room2ID, serviceID: fx.SpaPackageID, want: false},
		{name: "package in couples room", roomID: fx.Room4ID, serviceID: fx.SpaPackageID, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoomCanHost(fx.Room(tt.roomID), fx.Service(tt.serviceID))
			assert.Equal(t, tt.want, result.OK, result.Reasons)
		})
	}
}

func TestRoomCanHost_BodyScrubPrecedence(t *testing.T) {
	couplesScrub := fx.Service(fx.CouplesScrubID)

	for _, room := range fx.Rooms() {
		result := RoomCanHost(room, couplesScrub)
		assert.Equal(t, room.HasBodyScrubEquipment, result.OK, "room %s", room.Name)
	}

	// Парная комната без оборудования отклоняется именно из-за оборудования
	result := RoomCanHost(fx.Room(fx.Room4ID), couplesScrub)
	assert.Contains(t, result.Reasons[0], "no body scrub equipment")
}

func TestRequiredRoomClass(t *testing.T) {
	assert.Equal(t, ClassCouplesScrub, RequiredRoomClass(fx.Service(fx.CouplesScrubID)))
	assert.Equal(t, ClassBodyScrub, RequiredRoomClass(fx.Service(fx.SaltScrubID)))
	assert.Equal(t, ClassCouples, RequiredRoomClass(fx.Service(fx.SpaPackageID)))
	assert.Equal(t, ClassGeneric, RequiredRoomClass(fx.Service(fx.BasicFacialID)))

	assert.Equal(t, "couples-capable, scrub-equipped", ClassCouplesScrub.Describe(domain.CategoryBodyScrub))
	assert.Equal(t, "facial-capable", ClassGeneric.Describe(domain.CategoryFacial))
}

func TestFilterRooms(t *testing.T) {
	rooms := fx.Rooms()
	rooms[3].IsActive = false // Room 4

	filtered := FilterRooms(rooms, fx.Service(fx.CouplesMassageID))
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, fx.Room3ID, filtered[0].ID)
	}
}
