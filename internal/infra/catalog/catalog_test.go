package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
)

func TestLoad_SampleCatalogMatchesReferenceSalon(t *testing.T) {
	c, err := Load("../../../configs/catalog.toml")
	require.NoError(t, err)
	ctx := context.Background()

	for _, want := range fx.Services() {
		got, err := c.GetService(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, want := range fx.Staff() {
		got, err := c.GetStaff(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got, want.Name)
	}

	rooms, err := c.ListRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, fx.Rooms(), rooms)

	services, err := c.ListServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, fx.Services(), services)

	staff, err := c.ListStaff(ctx)
	require.NoError(t, err)
	assert.Equal(t, fx.Staff(), staff)
}

func TestCatalog_NotFound(t *testing.T) {
	c, err := Parse("")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.GetService(ctx, 1)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	_, err = c.GetStaff(ctx, 1)
	assert.ErrorIs(t, err, ErrStaffNotFound)
	_, err = c.GetRoom(ctx, 1)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c, err := Parse(`
[[rooms]]
id = 1
name = "Room 1"
capabilities = ["facial"]
`)
	require.NoError(t, err)
	ctx := context.Background()

	room, err := c.GetRoom(ctx, 1)
	require.NoError(t, err)
	room.IsActive = false
	room.Capabilities[0] = domain.CategoryMassage

	again, err := c.GetRoom(ctx, 1)
	require.NoError(t, err)
	assert.True(t, again.IsActive)
	assert.Equal(t, []domain.Category{domain.CategoryFacial}, again.Capabilities)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "unknown category",
			data: "[[services]]\nid = 1\nname = \"X\"\nduration_minutes = 30\ncategory = \"aromatherapy\"",
		},
		{
			name: "zero duration",
			data: "[[services]]\nid = 1\nname = \"X\"\ncategory = \"facial\"",
		},
		{
			name: "duplicate room",
			data: "[[rooms]]\nid = 1\nname = \"A\"\n[[rooms]]\nid = 1\nname = \"B\"",
		},
		{
			name: "unknown weekday",
			data: "[[staff]]\nid = 1\nname = \"X\"\n[staff.schedule]\nfunday = { available = true }",
		},
		{
			name: "inverted shift",
			data: "[[staff]]\nid = 1\nname = \"X\"\n[staff.schedule]\nmonday = { available = true, start = \"18:00\", end = \"12:00\" }",
		},
		{
			name: "missing default room",
			data: "[[staff]]\nid = 1\nname = \"X\"\ndefault_room_id = 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
