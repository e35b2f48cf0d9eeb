package validate_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/internal/testfixtures/fakes"
	validateBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-SpaBooking/pkg/ptr"
)

type fakeUseCase struct {
	got  *validateBooking.Request
	resp *validateBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *validateBooking.Request) (*validateBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/validate", strings.NewReader(body))
	NewHandler(uc, &fakes.Logger{}).Handle(rec, req)
	return rec
}

func TestHandle_InvalidBookingIsOK(t *testing.T) {
	result := domain.NewValidationResult()
	result.AddError(domain.IssueRoomConflict, "Room 2 is already booked 14:00-14:45")
	result.AddConflict(fx.Reservation(1, fx.Room2ID, fx.CarlaID, fx.Wednesday, "14:00", 45))
	uc := &fakeUseCase{resp: &validateBooking.Response{Result: result, RoomID: ptr.Ptr(fx.Room2ID)}}

	rec := serve(uc, `{"serviceId":107,"staffId":11,"roomId":2,"bookingDate":"2025-10-15","startTime":"14:30"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fx.Wednesday, uc.got.Date)
	assert.Equal(t, "14:30", uc.got.StartTime)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["isValid"])
	assert.Equal(t, 2.0, body["roomId"])
	assert.Len(t, body["errors"], 1)
	assert.Len(t, body["conflicts"], 1)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"bad date", `{"serviceId":100,"staffId":10,"bookingDate":"13.10.2025","startTime":"10:00"}`, nil, http.StatusBadRequest},
		{"invalid input", `{"serviceId":0,"staffId":10,"bookingDate":"2025-10-13","startTime":"10:00"}`, validateBooking.ErrInvalidInput, http.StatusBadRequest},
		{"service not found", `{"serviceId":9,"staffId":10,"bookingDate":"2025-10-13","startTime":"10:00"}`, validateBooking.ErrServiceNotFound, http.StatusNotFound},
		{"staff not found", `{"serviceId":100,"staffId":9,"bookingDate":"2025-10-13","startTime":"10:00"}`, validateBooking.ErrStaffNotFound, http.StatusNotFound},
		{"internal", `{"serviceId":100,"staffId":10,"bookingDate":"2025-10-13","startTime":"10:00"}`, validateBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
