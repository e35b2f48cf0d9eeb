package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/internal/testfixtures/fakes"
	getAvailableSlots "github.com/m04kA/SMC-SpaBooking/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceId}/available-slots", NewHandler(uc, &fakes.Logger{}).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:      fx.Sunday,
		ServiceID: fx.DeepTissueID,
		StaffID:   fx.DiegoID,
		Slots: []domain.AvailableSlot{
			{StartTime: "09:00", DurationMinutes: 60, RoomID: fx.Room4ID, RoomName: "Room 4"},
			{StartTime: "09:15", DurationMinutes: 60, RoomID: fx.Room4ID, RoomName: "Room 4",
				Warnings: []string{"short notice"}},
		},
	}}

	rec := serve(uc, "/api/v1/services/101/available-slots?staffId=13&date=2025-10-19")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(101), uc.got.ServiceID)
	assert.Equal(t, int64(13), uc.got.StaffID)
	assert.Equal(t, fx.Sunday, uc.got.Date)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-10-19", body.Date)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.Equal(t, fx.Room4ID, body.Slots[0].RoomID)
	assert.NotNil(t, body.Slots[0].Warnings)
	assert.Empty(t, body.Slots[0].Warnings)
	assert.Equal(t, []string{"short notice"}, body.Slots[1].Warnings)
}

func TestHandle_Errors(t *testing.T) {
	const valid = "/api/v1/services/101/available-slots?staffId=13&date=2025-10-19"

	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"bad service id", "/api/v1/services/abc/available-slots?staffId=14&date=2025-10-19", nil, http.StatusBadRequest},
		{"missing staff", "/api/v1/services/103/available-slots?date=2025-10-19", nil, http.StatusBadRequest},
		{"bad staff", "/api/v1/services/103/available-slots?staffId=x&date=2025-10-19", nil, http.StatusBadRequest},
		{"missing date", "/api/v1/services/101/available-slots?staffId=13", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/services/101/available-slots?staffId=13&date=19.10.2025", nil, http.StatusBadRequest},
		{"past date", valid, getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"invalid input", valid, getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"service not found", valid, getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"staff not found", valid, getAvailableSlots.ErrStaffNotFound, http.StatusNotFound},
		{"internal", valid, getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
