package get_salon_config

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/internal/testfixtures/fakes"
)

type fakeCatalog struct {
	staffErr error
}

func (f *fakeCatalog) ListServices(context.Context) ([]*domain.Service, error) {
	return fx.Services(), nil
}

func (f *fakeCatalog) ListRooms(context.Context) ([]*domain.Room, error) {
	return fx.Rooms(), nil
}

func (f *fakeCatalog) ListStaff(context.Context) ([]*domain.Staff, error) {
	if f.staffErr != nil {
		return nil, f.staffErr
	}
	return fx.Staff(), nil
}

func serve(catalog *fakeCatalog) *httptest.ResponseRecorder {
	h := NewHandler(catalog, Settings{BusinessHours: fx.BusinessHours(), SlotStepMinutes: 15}, &fakes.Logger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/salon/config", nil))
	return rec
}

func TestHandle_SalonConfig(t *testing.T) {
	rec := serve(&fakeCatalog{})

	require.Equal(t, http.StatusOK, rec.Code)

	var body SalonConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "09:00", body.OpenTime)
	assert.Equal(t, "20:00", body.CloseTime)
	assert.Equal(t, 15, body.SlotStepMinutes)
	assert.Len(t, body.Services, len(fx.Services()))
	assert.Len(t, body.Rooms, 4)

	var diego *StaffResponse
	for i := range body.Staff {
		if body.Staff[i].ID == fx.DiegoID {
			diego = &body.Staff[i]
		}
	}
	require.NotNil(t, diego)
	assert.Equal(t, "works Sunday only; on call, needs 120 minutes notice", diego.Schedule)
	assert.Equal(t, 120, diego.MinNoticeMinutes)
}

func TestHandle_CatalogFailure(t *testing.T) {
	rec := serve(&fakeCatalog{staffErr: errors.New("catalog unavailable")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
