package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBooking/internal/domain"
	fx "github.com/m04kA/SMC-SpaBooking/internal/testfixtures"
	"github.com/m04kA/SMC-SpaBooking/internal/testfixtures/fakes"
	createBooking "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_booking"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{"serviceId":100,"staffId":10,"bookingDate":"2025-10-13","startTime":"10:00"}`

func serve(uc *fakeUseCase, body string, userID int64) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	NewHandler(uc, &fakes.Logger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              1,
		CustomerID:      7,
		ServiceID:       fx.BasicFacialID,
		StaffID:         fx.AnaID,
		RoomID:          fx.Room1ID,
		BookingDate:     fx.Monday,
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          string(domain.StatusConfirmed),
		ServiceName:     "Basic Facial",
		RoomName:        "Room 1",
		CreatedAt:       fx.ReferenceTime(),
		UpdatedAt:       fx.ReferenceTime(),
	}}

	rec := serve(uc, validBody, 7)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), uc.got.CustomerID)
	assert.Nil(t, uc.got.RoomID)
	assert.Equal(t, fx.Monday, uc.got.Date)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "2025-10-13", body.BookingDate)
	assert.Equal(t, "10:00", body.StartTime)
	assert.Equal(t, "Room 1", body.RoomName)
	assert.Equal(t, []string{}, body.Warnings)
	assert.Equal(t, "2025-10-12T08:00:00Z", body.CreatedAt)
}

func TestHandle_ValidationFailedReturnsDetails(t *testing.T) {
	result := domain.NewValidationResult()
	result.AddError(domain.IssueStaffSchedule, "Ana is not available on Tuesday")
	uc := &fakeUseCase{err: &createBooking.ValidationError{Result: result}}

	rec := serve(uc, validBody, 7)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error   string                            `json:"error"`
		Details handlers.ValidationResultResponse `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgValidationFailed, body.Error)
	assert.False(t, body.Details.IsValid)
	require.Len(t, body.Details.Errors, 1)
	assert.Equal(t, "staff_schedule", body.Details.Errors[0].Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     int64
		err        error
		wantStatus int
	}{
		{"no user", validBody, 0, nil, http.StatusUnauthorized},
		{"bad json", `{"serviceId":`, 7, nil, http.StatusBadRequest},
		{"bad date", `{"serviceId":100,"staffId":10,"bookingDate":"2025/10/13","startTime":"10:00"}`, 7, nil, http.StatusBadRequest},
		{"slot taken", validBody, 7, fmt.Errorf("%w: room busy", createBooking.ErrSlotNotAvailable), http.StatusConflict},
		{"invalid input", validBody, 7, createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"service not found", validBody, 7, createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"staff not found", validBody, 7, createBooking.ErrStaffNotFound, http.StatusNotFound},
		{"room not found", validBody, 7, createBooking.ErrRoomNotFound, http.StatusNotFound},
		{"internal", validBody, 7, createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body, tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
