package recommend_room

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/internal/testfixtures/fakes"
	recommendRoom "github.com/m04kA/SMC-SpaBooking/internal/usecase/recommend_room"
)

type fakeUseCase struct {
	got  *recommendRoom.Request
	resp *recommendRoom.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *recommendRoom.Request) (*recommendRoom.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validTarget = "/api/v1/rooms/recommendation?serviceId=101&staffId=13&date=2025-10-19&time=10:00"

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, &fakes.Logger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Recommendation(t *testing.T) {
	uc := &fakeUseCase{resp: &recommendRoom.Response{
		Room:         fx.Room(fx.Room4ID),
		Reason:       "closest capability match for massage",
		Alternatives: []*domain.Room{fx.Room(fx.Room2ID), fx.Room(fx.Room3ID)},
	}}

	rec := serve(uc, validTarget)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fx.DeepTissueID, uc.got.ServiceID)
	assert.Equal(t, fx.DiegoID, uc.got.StaffID)
	assert.Equal(t, fx.Sunday, uc.got.Date)
	assert.Equal(t, "10:00", uc.got.StartTime)

	var body RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, fx.Room4ID, body.Room.ID)
	assert.True(t, body.Room.IsCouplesRoom)
	assert.Equal(t, "closest capability match for massage", body.Reason)
	require.Len(t, body.Alternatives, 2)
	assert.Equal(t, fx.Room2ID, body.Alternatives[0].ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"missing service", "/api/v1/rooms/recommendation?staffId=13&date=2025-10-19&time=10:00", nil, http.StatusBadRequest},
		{"bad staff", "/api/v1/rooms/recommendation?serviceId=101&staffId=x&date=2025-10-19&time=10:00", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/rooms/recommendation?serviceId=101&staffId=13&date=2025/10/19&time=10:00", nil, http.StatusBadRequest},
		{"missing time", "/api/v1/rooms/recommendation?serviceId=101&staffId=13&date=2025-10-19", nil, http.StatusBadRequest},
		{"invalid input", validTarget, recommendRoom.ErrInvalidInput, http.StatusBadRequest},
		{"service not found", validTarget, recommendRoom.ErrServiceNotFound, http.StatusNotFound},
		{"staff not found", validTarget, recommendRoom.ErrStaffNotFound, http.StatusNotFound},
		{"no room", validTarget, recommendRoom.ErrNoRoomAvailable, http.StatusConflict},
		{"internal", validTarget, recommendRoom.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
